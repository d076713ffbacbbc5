package domain

import "errors"

// ErrInvalidInput marks caller-supplied values the engines refuse to
// compute on (negative amounts, non-positive horizon, rates below -100%).
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidConfig marks a malformed tax configuration (non-contiguous
// or non-progressive slab table, negative cess or deduction).
var ErrInvalidConfig = errors.New("invalid configuration")
