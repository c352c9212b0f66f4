package repository

import "errors"

// ErrCorruptSnapshot is returned when the stored snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt contact snapshot")
