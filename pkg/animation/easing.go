package animation

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Easing selects one of the Penner curves used to shape transition progress.
//
// Ease maps linear progress in [0, 1] to eased progress. Back and Elastic
// curves overshoot outside [0, 1] on purpose; the result is passed to the
// interpolation unclamped.
type Easing int

const (
	Linear Easing = iota
	QuadIn
	QuadOut
	QuadInOut
	QuadOutIn
	CubicIn
	CubicOut
	CubicInOut
	CubicOutIn
	QuartIn
	QuartOut
	QuartInOut
	QuartOutIn
	QuintIn
	QuintOut
	QuintInOut
	QuintOutIn
	SineIn
	SineOut
	SineInOut
	SineOutIn
	ExpoIn
	ExpoOut
	ExpoInOut
	ExpoOutIn
	CircIn
	CircOut
	CircInOut
	CircOutIn
	ElasticIn
	ElasticOut
	ElasticInOut
	ElasticOutIn
	BackIn
	BackOut
	BackInOut
	BackOutIn
	BounceIn
	BounceOut
	BounceInOut
	BounceOutIn

	easingCount
)

// DefaultEasing is the curve used by NewBuilder.
const DefaultEasing = SineInOut

type curve struct {
	name string
	fn   ease.TweenFunc
}

var curves = [easingCount]curve{
	Linear:       {"linear", ease.Linear},
	QuadIn:       {"quad-in", ease.InQuad},
	QuadOut:      {"quad-out", ease.OutQuad},
	QuadInOut:    {"quad-in-out", ease.InOutQuad},
	QuadOutIn:    {"quad-out-in", ease.OutInQuad},
	CubicIn:      {"cubic-in", ease.InCubic},
	CubicOut:     {"cubic-out", ease.OutCubic},
	CubicInOut:   {"cubic-in-out", ease.InOutCubic},
	CubicOutIn:   {"cubic-out-in", ease.OutInCubic},
	QuartIn:      {"quart-in", ease.InQuart},
	QuartOut:     {"quart-out", ease.OutQuart},
	QuartInOut:   {"quart-in-out", ease.InOutQuart},
	QuartOutIn:   {"quart-out-in", ease.OutInQuart},
	QuintIn:      {"quint-in", ease.InQuint},
	QuintOut:     {"quint-out", ease.OutQuint},
	QuintInOut:   {"quint-in-out", ease.InOutQuint},
	QuintOutIn:   {"quint-out-in", ease.OutInQuint},
	SineIn:       {"sine-in", ease.InSine},
	SineOut:      {"sine-out", ease.OutSine},
	SineInOut:    {"sine-in-out", ease.InOutSine},
	SineOutIn:    {"sine-out-in", ease.OutInSine},
	ExpoIn:       {"expo-in", ease.InExpo},
	ExpoOut:      {"expo-out", ease.OutExpo},
	ExpoInOut:    {"expo-in-out", ease.InOutExpo},
	ExpoOutIn:    {"expo-out-in", ease.OutInExpo},
	CircIn:       {"circ-in", ease.InCirc},
	CircOut:      {"circ-out", ease.OutCirc},
	CircInOut:    {"circ-in-out", ease.InOutCirc},
	CircOutIn:    {"circ-out-in", ease.OutInCirc},
	ElasticIn:    {"elastic-in", ease.InElastic},
	ElasticOut:   {"elastic-out", ease.OutElastic},
	ElasticInOut: {"elastic-in-out", ease.InOutElastic},
	ElasticOutIn: {"elastic-out-in", ease.OutInElastic},
	BackIn:       {"back-in", ease.InBack},
	BackOut:      {"back-out", ease.OutBack},
	BackInOut:    {"back-in-out", ease.InOutBack},
	BackOutIn:    {"back-out-in", ease.OutInBack},
	BounceIn:     {"bounce-in", ease.InBounce},
	BounceOut:    {"bounce-out", ease.OutBounce},
	BounceInOut:  {"bounce-in-out", ease.InOutBounce},
	BounceOutIn:  {"bounce-out-in", ease.OutInBounce},
}

// Ease returns the eased progress for linear progress t.
// t is clamped to [0, 1]; the result is not.
func (e Easing) Ease(t float32) float32 {
	if t <= 0 {
		t = 0
	} else if t >= 1 {
		t = 1
	}
	if !e.valid() {
		return t
	}
	return curves[e].fn(t, 0, 1, 1)
}

func (e Easing) valid() bool {
	return e >= 0 && e < easingCount
}

// String returns the kebab-case curve name, e.g. "sine-in-out".
func (e Easing) String() string {
	if !e.valid() {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return curves[e].name
}

// ParseEasing returns the curve with the given name. Matching ignores case
// and accepts underscores in place of dashes.
func ParseEasing(name string) (Easing, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, c := range curves {
		if c.name == key {
			return Easing(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

// Easings returns every curve in declaration order.
func Easings() []Easing {
	out := make([]Easing, easingCount)
	for i := range out {
		out[i] = Easing(i)
	}
	return out
}

// MarshalYAML encodes the curve by name.
func (e Easing) MarshalYAML() (any, error) {
	if !e.valid() {
		return nil, fmt.Errorf("invalid easing %d", int(e))
	}
	return e.String(), nil
}

// UnmarshalYAML decodes a curve name.
func (e *Easing) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: easing must be a string", value.Line)
	}
	parsed, err := ParseEasing(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = parsed
	return nil
}
