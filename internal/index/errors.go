package index

import "errors"

// ErrElementNotFound indicates that no entry exists for the requested
// element id.
var ErrElementNotFound = errors.New("element not found in index")
