package usecase

import "errors"

// ErrInvalidInput marks requests rejected before reaching Clicksign
var ErrInvalidInput = errors.New("invalid input")
