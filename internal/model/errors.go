package model

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is reported by TryApply for moves that are not legal in the
// position they are applied to.
var ErrIllegalMove = errors.New("illegal move")

func illegalMoveError(move Move) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, move)
}
