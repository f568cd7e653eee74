package animation

import (
	"testing"
	"time"

	"github.com/go-drift/flipbook/pkg/geometry"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 1; i <= 3; i++ {
		q.Push(NewDelay(time.Duration(i) * time.Millisecond))
	}
	if q.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", q.Size())
	}
	for i := 1; i <= 3; i++ {
		b, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront() #%d returned nothing", i)
		}
		if want := time.Duration(i) * time.Millisecond; b.Duration != want {
			t.Errorf("PopFront() #%d duration = %v, want %v", i, b.Duration, want)
		}
	}
	if _, ok := q.PopFront(); ok {
		t.Error("expected empty queue")
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestQueuePlayNowReplacesBacklog(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(NewDelay(time.Second))
	}
	x := NewBuilder().AnimateTo(geometry.RectFromXYWH(1, 2, 3, 4))
	q.PlayNow(x)

	if q.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", q.Size())
	}
	got, _ := q.PopFront()
	if got.To == nil || *got.To != *x.To {
		t.Errorf("PopFront() = %v, want %v", got, x)
	}
}

func TestQueuePlayNowOnEmpty(t *testing.T) {
	q := NewQueue()
	q.PlayNow(NewDelay(time.Millisecond))
	if q.Size() != 1 {
		t.Errorf("Size() = %d, want 1", q.Size())
	}
}

func TestQueueDropAll(t *testing.T) {
	q := NewQueue()
	q.Push(NewBuilder())
	q.Push(NewBuilder())
	q.DropAll()
	if !q.IsEmpty() || q.Size() != 0 {
		t.Errorf("after DropAll Size() = %d", q.Size())
	}
	q.Push(NewDelay(time.Millisecond))
	if q.Size() != 1 {
		t.Errorf("Size() after reuse = %d, want 1", q.Size())
	}
}

func TestQueueSnapshotIsCopy(t *testing.T) {
	q := NewQueue()
	q.Push(NewDelay(time.Millisecond))
	snap := q.Snapshot()
	snap[0].Duration = time.Hour
	b, _ := q.PopFront()
	if b.Duration != time.Millisecond {
		t.Errorf("queue entry modified through snapshot: %v", b.Duration)
	}
}
