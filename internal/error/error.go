package error

import (
	"errors"
	"fmt"
)

var (
	ErrPlacementOutOfBounds = errors.New("placement out of grid bounds")
	ErrPlacementOverlap     = errors.New("placement overlaps another ship")
)

func ErrOutOfBounds(x, y int, orientation string) error {
	return fmt.Errorf("%w\tx: %d\ty: %d\torientation: %s", ErrPlacementOutOfBounds, x, y, orientation)
}

func ErrOverlap(x, y int, orientation string) error {
	return fmt.Errorf("%w\tx: %d\ty: %d\torientation: %s", ErrPlacementOverlap, x, y, orientation)
}

func ErrInvalidOrientation(code byte) error {
	return fmt.Errorf("invalid orientation code: %q", code)
}

func ErrInvalidAbilityShape(shape uint8) error {
	return fmt.Errorf("invalid ability shape: %d", shape)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidPort(port string) error {
	return fmt.Errorf("invalid port: %s", port)
}
