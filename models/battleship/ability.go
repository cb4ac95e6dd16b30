package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	AbilityMaskSize int = 5
	abilityCenter   int = AbilityMaskSize / 2
)

type AbilityShape uint8

const (
	AbilityShapeCone AbilityShape = iota
	AbilityShapeCross
	AbilityShapeDiamond
)

func (as AbilityShape) String() string {
	switch as {
	case AbilityShapeCone:
		return "cone"
	case AbilityShapeCross:
		return "cross"
	case AbilityShapeDiamond:
		return "diamond"
	default:
		return fmt.Sprintf("AbilityShape(%d)", uint8(as))
	}
}

func (as AbilityShape) MarshalText() ([]byte, error) {
	return []byte(as.String()), nil
}

func (as *AbilityShape) UnmarshalText(text []byte) error {
	for _, candidate := range []AbilityShape{AbilityShapeCone, AbilityShapeCross, AbilityShapeDiamond} {
		if candidate.String() == string(text) {
			*as = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid ability shape: %q", text)
}

// AbilityMask is an area of effect stencil. Its center cell is
// aligned with the origin it is applied at.
type AbilityMask [AbilityMaskSize][AbilityMaskSize]bool

func newMask(rule func(i, j int) bool) AbilityMask {
	var mask AbilityMask
	for i := 0; i < AbilityMaskSize; i++ {
		for j := 0; j < AbilityMaskSize; j++ {
			mask[i][j] = rule(i, j)
		}
	}
	return mask
}

// NewConeMask widens by one cell each side per row, starting
// with a single cell on the top row.
func NewConeMask() AbilityMask {
	return newMask(func(i, j int) bool {
		return abilityCenter-i <= j && j <= abilityCenter+i
	})
}

func NewCrossMask() AbilityMask {
	return newMask(func(i, j int) bool {
		return i == abilityCenter || j == abilityCenter
	})
}

// NewDiamondMask marks every cell within manhattan distance
// abilityCenter of the center.
func NewDiamondMask() AbilityMask {
	return newMask(func(i, j int) bool {
		return abs(i-abilityCenter)+abs(j-abilityCenter) <= abilityCenter
	})
}

func NewAbilityMask(shape AbilityShape) (AbilityMask, error) {
	switch shape {
	case AbilityShapeCone:
		return NewConeMask(), nil
	case AbilityShapeCross:
		return NewCrossMask(), nil
	case AbilityShapeDiamond:
		return NewDiamondMask(), nil
	default:
		return AbilityMask{}, cerr.ErrInvalidAbilityShape(uint8(shape))
	}
}

func (m *AbilityMask) Count() int {
	n := 0
	for i := range m {
		for j := range m[i] {
			if m[i][j] {
				n++
			}
		}
	}
	return n
}

// ApplyAbility stamps the mask centered at origin. Ship cells under
// the mask become PositionStateAbility. Mask cells that land off the
// board are dropped.
func (g *Grid) ApplyAbility(mask AbilityMask, origin Coordinates) {
	for i := 0; i < AbilityMaskSize; i++ {
		for j := 0; j < AbilityMaskSize; j++ {
			if !mask[i][j] {
				continue
			}

			target := NewCoordinates(origin.X+i-abilityCenter, origin.Y+j-abilityCenter)
			if !InBounds(target.X, target.Y) {
				continue
			}
			g.set(target, PositionStateAbility)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
