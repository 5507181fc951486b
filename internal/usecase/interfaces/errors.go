package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a uniqueness guard rejects a
// write: space code, active plate, customer document or user email.
var ErrDuplicateKey = errors.New("duplicate key")
