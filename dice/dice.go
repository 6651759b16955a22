// Package dice rolls dice for the front-ends. It supports single dice with a
// float side count and simple notation such as "3d6" or "2d8+1".
package dice

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// RollResult contains the result of an expression roll
type RollResult struct {
	Total      int    // Final computed value
	Rolls      []int  // Individual die rolls
	Expression string // Original expression
}

// Roller handles dice rolling with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// RollDie returns a value in [1, sides]. Fractional side counts are truncated.
func (r *Roller) RollDie(sides float64) (int, error) {
	if math.IsNaN(sides) || sides < 1 || sides > math.MaxUint16 {
		return 0, fmt.Errorf("invalid side count: %v", sides)
	}
	n := int(sides)
	return r.rng.Intn(n) + 1, nil
}

// termRegex matches one signed term: "3d6", "d20", "+2", "-1"
var termRegex = regexp.MustCompile(`([+-]?)(?:(\d*)d(\d+)|(\d+))`)

// Roll evaluates a sum of dice and constant terms, e.g. "2d6+3" or "d20-1"
func (r *Roller) Roll(expression string) (*RollResult, error) {
	expr := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(expression)), " ", "")
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}

	matches := termRegex.FindAllStringSubmatchIndex(expr, -1)
	result := &RollResult{Expression: expression}
	pos := 0
	for i, m := range matches {
		// Terms must be contiguous and every term after the first needs a sign
		if m[0] != pos || (i > 0 && m[3] == m[2]) {
			return nil, fmt.Errorf("invalid expression: %s", expression)
		}
		pos = m[1]

		sign := 1
		if expr[m[2]:m[3]] == "-" {
			sign = -1
		}

		if m[8] >= 0 {
			// Constant term
			v, err := strconv.Atoi(expr[m[8]:m[9]])
			if err != nil {
				return nil, fmt.Errorf("invalid constant in %s: %w", expression, err)
			}
			result.Total += sign * v
			continue
		}

		count := 1
		if m[5] > m[4] {
			count, _ = strconv.Atoi(expr[m[4]:m[5]])
		}
		sides, _ := strconv.Atoi(expr[m[6]:m[7]])
		if count <= 0 || sides <= 0 {
			return nil, fmt.Errorf("invalid dice specification: %s", expr[m[0]:m[1]])
		}
		for j := 0; j < count; j++ {
			roll := r.rng.Intn(sides) + 1
			result.Rolls = append(result.Rolls, roll)
			result.Total += sign * roll
		}
	}
	if pos != len(expr) {
		return nil, fmt.Errorf("invalid expression: %s", expression)
	}

	return result, nil
}
