package battleship

import (
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
	OrientationDiagonalMain
	OrientationDiagonalAnti
)

// step taken from one ship cell to the next
var orientationDeltas = [...]Coordinates{
	OrientationHorizontal:   {X: 0, Y: 1},
	OrientationVertical:     {X: 1, Y: 0},
	OrientationDiagonalMain: {X: 1, Y: 1},
	OrientationDiagonalAnti: {X: 1, Y: -1},
}

var orientationCodes = [...]byte{
	OrientationHorizontal:   'H',
	OrientationVertical:     'V',
	OrientationDiagonalMain: 'D',
	OrientationDiagonalAnti: 'A',
}

func ParseOrientation(code byte) (Orientation, error) {
	for o, c := range orientationCodes {
		if c == code {
			return Orientation(o), nil
		}
	}
	return 0, cerr.ErrInvalidOrientation(code)
}

func (o Orientation) IsValid() bool {
	return int(o) < len(orientationDeltas)
}

func (o Orientation) Delta() (Coordinates, bool) {
	if !o.IsValid() {
		return Coordinates{}, false
	}
	return orientationDeltas[o], true
}

func (o Orientation) String() string {
	if !o.IsValid() {
		return "?"
	}
	return string(orientationCodes[o])
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return cerr.ErrInvalidOrientation(0)
	}
	parsed, err := ParseOrientation(text[0])
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
