package ports

import "errors"

// ErrMalformedRecord marks a record the source could not parse into a
// well-formed attempt. Sources wrap it with position details; hosts decide
// whether to skip the record or abort the run.
var ErrMalformedRecord = errors.New("malformed attempt record")
