package model

import "errors"

// ErrNotFound is returned by every store when the referenced entity does
// not exist; handlers map it to 404.
var ErrNotFound = errors.New("not found")
