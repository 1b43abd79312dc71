package particle

import (
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseRange_Valid tests parsing of fixed and range formats
func TestParseRange_Valid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Integer", "50", 50, 50},
		{"Float", "0.95", 0.95, 0.95},
		{"Negative", "-10.5", -10.5, -10.5},
		{"Float range", "[2 5]", 2, 5},
		{"Negative range", "[-5 -2]", -5, -2},
		{"Single bracket", "[3]", 3, 3},
		{"Padded", "  [20   50] ", 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.input, err)
			}
			if r.Min != tt.wantMin || r.Max != tt.wantMax {
				t.Errorf("ParseRange(%q) = %v, want [%v %v]", tt.input, r, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// TestParseRange_Invalid tests malformed inputs
func TestParseRange_Invalid(t *testing.T) {
	inputs := []string{"", "abc", "[1 2", "[5 2]", "[1 2 3]", "[x 2]", "[]"}
	for _, in := range inputs {
		if _, err := ParseRange(in); err == nil {
			t.Errorf("ParseRange(%q) expected error", in)
		}
	}
}

func TestRangeString(t *testing.T) {
	if got := Between(2, 5).String(); got != "[2 5]" {
		t.Errorf("String() = %q, want [2 5]", got)
	}
	if got := Fixed(0.1).String(); got != "0.1" {
		t.Errorf("String() = %q, want 0.1", got)
	}
}

// TestRangeSampling 验证采样值始终落在范围内
func TestRangeSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	speed := Between(2, 5)
	radius := Between(2, 4)

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := speed.Float(rng)
		if v < 2 || v >= 5 {
			t.Fatalf("Float() = %v, out of [2, 5)", v)
		}
		n := radius.Int(rng)
		if n < 2 || n > 4 {
			t.Fatalf("Int() = %d, out of [2, 4]", n)
		}
		seen[n] = true
	}

	// randint 语义：两端都包含
	for _, want := range []int{2, 3, 4} {
		if !seen[want] {
			t.Errorf("Int() never produced %d", want)
		}
	}
}

func TestRangeDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Fixed(0.1)
	if got := r.Float(rng); got != 0.1 {
		t.Errorf("Float() = %v, want 0.1", got)
	}
	if got := Fixed(3).Int(rng); got != 3 {
		t.Errorf("Int() = %d, want 3", got)
	}
}

func TestRangeYAML(t *testing.T) {
	var doc struct {
		Speed   Range `yaml:"speed"`
		Gravity Range `yaml:"gravity"`
	}
	if err := yaml.Unmarshal([]byte("speed: \"[2 5]\"\ngravity: 0.1\n"), &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.Speed != Between(2, 5) {
		t.Errorf("Speed = %v, want [2 5]", doc.Speed)
	}
	if doc.Gravity != Fixed(0.1) {
		t.Errorf("Gravity = %v, want 0.1", doc.Gravity)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if err := yaml.Unmarshal([]byte("speed: [2, 5]\n"), &doc); err == nil {
		t.Errorf("expected error for sequence node, marshalled doc was %s", out)
	}
}
