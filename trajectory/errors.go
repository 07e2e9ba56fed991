package trajectory

import "github.com/pkg/errors"

var errNonPositiveMoveTime = errors.New("trajectory: move_time must be positive")
