package store

import "errors"

var ErrNotFound = errors.New("key not found")
