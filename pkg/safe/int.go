package safe

import (
	"fmt"
	"math"
)

// Int converts unsigned integers to int with range validation.
func Int[T ~uint | ~uint32 | ~uint64](v T) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
