package dice

import (
	"math"
	"math/rand"
	"testing"
)

func newTestRoller() *Roller {
	return NewRoller(rand.New(rand.NewSource(42)))
}

func TestRollDieRange(t *testing.T) {
	r := newTestRoller()
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v, err := r.RollDie(6)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if v < 1 || v > 6 {
			t.Fatalf("Roll %d out of range [1, 6]", v)
		}
		seen[v] = true
	}

	for face := 1; face <= 6; face++ {
		if !seen[face] {
			t.Errorf("Expected face %d to be reachable", face)
		}
	}
}

func TestRollDieFractionalSides(t *testing.T) {
	r := newTestRoller()
	for i := 0; i < 500; i++ {
		v, err := r.RollDie(6.9)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if v > 6 {
			t.Fatalf("Expected 6.9 sides to truncate to 6, got %d", v)
		}
	}

	if v, _ := r.RollDie(1); v != 1 {
		t.Errorf("Expected a one-sided die to roll 1, got %d", v)
	}
}

func TestRollDieInvalid(t *testing.T) {
	r := newTestRoller()
	for _, sides := range []float64{0, 0.5, -6, math.NaN(), math.Inf(1)} {
		if _, err := r.RollDie(sides); err == nil {
			t.Errorf("Expected error for %v sides", sides)
		}
	}
}

func TestRollExpression(t *testing.T) {
	tests := []struct {
		expr     string
		min, max int
		rolls    int
	}{
		{"3d6", 3, 18, 3},
		{"d20", 1, 20, 1},
		{"2d8+1", 3, 17, 2},
		{"1d4 - 1", 0, 3, 1},
		{"5", 5, 5, 0},
		{"2d6+1d4+2", 5, 18, 3},
	}

	r := newTestRoller()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				res, err := r.Roll(tt.expr)
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if res.Total < tt.min || res.Total > tt.max {
					t.Fatalf("Total %d outside [%d, %d]", res.Total, tt.min, tt.max)
				}
				if len(res.Rolls) != tt.rolls {
					t.Fatalf("Expected %d rolls, got %d", tt.rolls, len(res.Rolls))
				}
				if res.Expression != tt.expr {
					t.Fatalf("Expected expression %q, got %q", tt.expr, res.Expression)
				}
			}
		})
	}
}

func TestRollExpressionInvalid(t *testing.T) {
	r := newTestRoller()
	for _, expr := range []string{"", "abc", "3x", "0d6", "2d0", "2d6*3", "d"} {
		if _, err := r.Roll(expr); err == nil {
			t.Errorf("Expected error for %q", expr)
		}
	}
}
