package animation

import (
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEasingEndpoints(t *testing.T) {
	const tolerance = 0.005
	for _, e := range Easings() {
		t.Run(e.String(), func(t *testing.T) {
			if got := e.Ease(0); math.Abs(float64(got)) > tolerance {
				t.Errorf("Ease(0) = %v, want 0", got)
			}
			if got := e.Ease(1); math.Abs(float64(got)-1) > tolerance {
				t.Errorf("Ease(1) = %v, want 1", got)
			}
		})
	}
}

func TestEasingClampsInput(t *testing.T) {
	for _, e := range []Easing{Linear, QuadIn, SineInOut, BounceOut} {
		if got, want := e.Ease(-0.5), e.Ease(0); got != want {
			t.Errorf("%v.Ease(-0.5) = %v, want %v", e, got, want)
		}
		if got, want := e.Ease(1.5), e.Ease(1); got != want {
			t.Errorf("%v.Ease(1.5) = %v, want %v", e, got, want)
		}
	}
}

func TestEasingOvershootIsNotClamped(t *testing.T) {
	if got := BackOut.Ease(0.5); got <= 1 {
		t.Errorf("BackOut.Ease(0.5) = %v, want > 1", got)
	}
	if got := BackIn.Ease(0.2); got >= 0 {
		t.Errorf("BackIn.Ease(0.2) = %v, want < 0", got)
	}
}

func TestEasingLinearIsIdentity(t *testing.T) {
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := Linear.Ease(x); math.Abs(float64(got-x)) > 1e-6 {
			t.Errorf("Linear.Ease(%v) = %v", x, got)
		}
	}
}

func TestEasingSymmetricCurvesHitMidpoint(t *testing.T) {
	for _, e := range []Easing{QuadInOut, CubicInOut, SineInOut, CircInOut, QuintInOut} {
		if got := e.Ease(0.5); math.Abs(float64(got)-0.5) > 0.01 {
			t.Errorf("%v.Ease(0.5) = %v, want 0.5", e, got)
		}
	}
}

func TestEasingNames(t *testing.T) {
	all := Easings()
	if len(all) != 41 {
		t.Fatalf("len(Easings()) = %d, want 41", len(all))
	}
	seen := make(map[string]bool)
	for _, e := range all {
		name := e.String()
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		parsed, err := ParseEasing(name)
		if err != nil {
			t.Errorf("ParseEasing(%q) error: %v", name, err)
			continue
		}
		if parsed != e {
			t.Errorf("ParseEasing(%q) = %v, want %v", name, parsed, e)
		}
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		in      string
		want    Easing
		wantErr bool
	}{
		{"linear", Linear, false},
		{"SINE_IN_OUT", SineInOut, false},
		{" bounce-out ", BounceOut, false},
		{"elastic-out-in", ElasticOutIn, false},
		{"wobble", Linear, true},
		{"", Linear, true},
	}
	for _, tt := range tests {
		got, err := ParseEasing(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEasing(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEasing(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEasingInvalidValue(t *testing.T) {
	e := Easing(-1)
	if got := e.String(); got != "Easing(-1)" {
		t.Errorf("String() = %q", got)
	}
	if got := e.Ease(0.3); got != 0.3 {
		t.Errorf("Ease(0.3) = %v, want passthrough 0.3", got)
	}
}

func TestEasingYAML(t *testing.T) {
	var doc struct {
		Easing Easing `yaml:"easing"`
	}
	if err := yaml.Unmarshal([]byte("easing: cubic-in-out\n"), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Easing != CubicInOut {
		t.Errorf("Easing = %v, want %v", doc.Easing, CubicInOut)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "easing: cubic-in-out" {
		t.Errorf("Marshal = %q", got)
	}

	if err := yaml.Unmarshal([]byte("easing: nope\n"), &doc); err == nil {
		t.Error("expected error for unknown easing")
	}
	if err := yaml.Unmarshal([]byte("easing: [1, 2]\n"), &doc); err == nil {
		t.Error("expected error for non-scalar easing")
	}
}
