package ports

import "errors"

// ErrNotFound is returned by stores when nothing is stored under a key.
var ErrNotFound = errors.New("not found")
