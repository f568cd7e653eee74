package animation

import (
	"sync"
	"testing"

	"github.com/go-drift/flipbook/pkg/errors"
	fliptest "github.com/go-drift/flipbook/pkg/testing"
)

// useFakeClock installs a fake animation clock for the duration of the test.
func useFakeClock(t *testing.T) *fliptest.FakeClock {
	t.Helper()
	clk := fliptest.NewFakeClock()
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

// captureHandler records reported errors instead of logging them.
type captureHandler struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *captureHandler) reported() []*errors.Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*errors.Error, len(h.errs))
	copy(out, h.errs)
	return out
}

func (h *captureHandler) panicCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.panics)
}

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	prev := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}
