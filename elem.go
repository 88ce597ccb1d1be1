package markup

import "fmt"

// An Elem is a handle for one open element on the builder's stack.  It refers to the element by position and
// serial number rather than owning it; once the element has been closed, or another element has become the
// insertion point, the handle is stale and its mutating operations fail with ErrStaleHandle.  The sole exception
// is Close, which may be used while descendants are still open -- it closes them first.
type Elem struct {
	b      *Builder
	tag    *Tag
	depth  int
	serial uint64
}

// Tag returns the element's tag name.
func (e *Elem) Tag() string { return e.tag.Name }

// Open opens a child element.  The handle must denote the current insertion point.
func (e *Elem) Open(name string) (*Elem, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.b.Open(name)
}

// OpenVoid opens a void child element.
func (e *Elem) OpenVoid(name string) (*Void, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.b.OpenVoid(name)
}

// Attr adds an attribute to the element.  Attributes must be added before any child or text content.
func (e *Elem) Attr(name, value string) error {
	if err := e.checkAttr(); err != nil {
		return err
	}
	return e.b.Attr(name, value)
}

// BoolAttr adds a Boolean attribute to the element.
func (e *Elem) BoolAttr(name string) error {
	if err := e.checkAttr(); err != nil {
		return err
	}
	return e.b.BoolAttr(name)
}

// Text adds escaped text content.
func (e *Elem) Text(text string) error {
	if err := e.check(); err != nil {
		return err
	}
	return e.b.Text(text)
}

// TextN adds the first n runes of text as escaped content.
func (e *Elem) TextN(text string, n int) error {
	if err := e.check(); err != nil {
		return err
	}
	return e.b.TextN(text, n)
}

// Raw adds trusted content verbatim.
func (e *Elem) Raw(trusted string) error {
	if err := e.check(); err != nil {
		return err
	}
	return e.b.Raw(trusted)
}

// Comment adds an escaped comment.
func (e *Elem) Comment(comment string) error {
	if err := e.check(); err != nil {
		return err
	}
	return e.b.Comment(comment)
}

// Close closes the element, closing any still-open descendants first.
func (e *Elem) Close() error {
	if !e.b.live(e.depth, e.serial) {
		return fmt.Errorf(`%w: <%s> is already closed`, ErrStaleHandle, e.tag.Name)
	}
	e.b.completeVoid()
	for len(e.b.stack) >= e.depth {
		e.b.closeTop()
	}
	return nil
}

func (e *Elem) check() error {
	if !e.b.current(e.depth, e.serial) {
		return fmt.Errorf(`%w: <%s> is not the current element`, ErrStaleHandle, e.tag.Name)
	}
	return nil
}

func (e *Elem) checkAttr() error {
	if !e.b.live(e.depth, e.serial) || e.depth != len(e.b.stack) {
		return fmt.Errorf(`%w: <%s> is not the current element`, ErrStaleHandle, e.tag.Name)
	}
	return nil
}

// A Void is a handle for an open void element.  Void elements accept attributes only -- there are no child or
// text operations to misuse.  The element is completed by Done, or automatically by the next builder operation.
type Void struct {
	b      *Builder
	tag    *Tag
	depth  int
	serial uint64
}

// Tag returns the element's tag name.
func (v *Void) Tag() string { return v.tag.Name }

// Attr adds an attribute to the void element.
func (v *Void) Attr(name, value string) error {
	if err := v.check(); err != nil {
		return err
	}
	return v.b.Attr(name, value)
}

// BoolAttr adds a Boolean attribute to the void element.
func (v *Void) BoolAttr(name string) error {
	if err := v.check(); err != nil {
		return err
	}
	return v.b.BoolAttr(name)
}

// Done completes the void element, ending its tag.  Void elements have no closing tag.
func (v *Void) Done() error {
	if err := v.check(); err != nil {
		return err
	}
	v.b.completeVoid()
	return nil
}

func (v *Void) check() error {
	if !v.b.live(v.depth, v.serial) || v.depth != len(v.b.stack) {
		return fmt.Errorf(`%w: <%s> is already complete`, ErrStaleHandle, v.tag.Name)
	}
	return nil
}
