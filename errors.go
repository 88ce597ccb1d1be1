package markup

import "errors"

// All builder failures wrap one of these sentinels, so callers can classify a rejection with errors.Is.  Every
// rejection leaves the builder untouched: nothing is written and the element stack does not change.
var (
	// ErrSchema reports an attempt to open a tag or set an attribute the schema does not permit in the current
	// position.
	ErrSchema = errors.New(`markup: schema violation`)

	// ErrSealed reports an attribute added after the element already received child or text content.  Attributes
	// must be set before any content.
	ErrSealed = errors.New(`markup: element already sealed`)

	// ErrEmptyStack reports a close or attribute with no element open.
	ErrEmptyStack = errors.New(`markup: no open element`)

	// ErrInvalidLength reports a bounded text write that requested more runes than the input contains.
	ErrInvalidLength = errors.New(`markup: invalid length`)

	// ErrStaleHandle reports a mutation through a handle whose element has since been closed or superseded.
	ErrStaleHandle = errors.New(`markup: stale element handle`)
)
