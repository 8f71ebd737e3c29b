package repository

import "errors"

// ErrUnknownPlay is returned by a commit when a cast or ticket references
// a play id that does not exist.  The whole batch is rejected.
var ErrUnknownPlay = errors.New("unknown play")
