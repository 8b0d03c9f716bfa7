package models

import "errors"

// ErrInvalidInput indicates user supplied values the calculator cannot work with,
// such as a herd size below one or a non-finite animal weight.
var ErrInvalidInput = errors.New("invalid input")

// ErrConfiguration indicates a mismatch between the options offered to a user and the
// loaded preset tables, or a preset whose values break the calculation invariants.
var ErrConfiguration = errors.New("configuration error")
