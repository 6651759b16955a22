package raycast

import "fmt"

// Indexing selects how a float position maps to a grid cell.
type Indexing int

const (
	// IndexRound rounds to the nearest cell (first-person view).
	IndexRound Indexing = iota
	// IndexTrunc truncates toward zero (top-down view).
	IndexTrunc
)

// Direction selects which angle a first-person column marches along.
type Direction int

const (
	// DirectionFaithful marches every column along the player's heading; the
	// column angle only offsets the ray origin.
	DirectionFaithful Direction = iota
	// DirectionPerColumn marches each column along its own column angle.
	DirectionPerColumn
)

// String returns the config name of the direction mode.
func (d Direction) String() string {
	switch d {
	case DirectionFaithful:
		return "faithful"
	case DirectionPerColumn:
		return "per-column"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction mode name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "faithful":
		return DirectionFaithful, nil
	case "per-column":
		return DirectionPerColumn, nil
	default:
		return 0, fmt.Errorf("unknown direction mode %q", s)
	}
}

// Accumulation selects how the distance accumulator grows per advance.
type Accumulation int

const (
	// DistanceUnscaled adds the full step per advance even though the
	// position only moves step/K.
	DistanceUnscaled Accumulation = iota
	// DistanceScaled adds step/K, the distance actually travelled.
	DistanceScaled
)

// String returns the config name of the accumulation mode.
func (a Accumulation) String() string {
	switch a {
	case DistanceUnscaled:
		return "unscaled"
	case DistanceScaled:
		return "scaled"
	default:
		return fmt.Sprintf("accumulation(%d)", int(a))
	}
}

// ParseAccumulation parses an accumulation mode name.
func ParseAccumulation(s string) (Accumulation, error) {
	switch s {
	case "", "unscaled":
		return DistanceUnscaled, nil
	case "scaled":
		return DistanceScaled, nil
	default:
		return 0, fmt.Errorf("unknown distance mode %q", s)
	}
}
