package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidMineCount = errors.New("invalid mine count")

type MineCountError struct {
	MineCount int
	Capacity  int
}

// [MineCountError] implements [error]
func (e MineCountError) Error() string {
	return fmt.Sprintf("%s: %d, want 1..%d", ErrInvalidMineCount, e.MineCount, e.Capacity-1)
}

func (e MineCountError) Unwrap() error {
	return ErrInvalidMineCount
}
