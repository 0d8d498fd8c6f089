package repo

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
)
