package domain

import (
	"errors"
)

var (
	MessageSuccessPing          = "pong"
	MessageFailedProcessRequest = "failed to process request"

	ErrMissingConfig = errors.New("missing required configuration")
)
