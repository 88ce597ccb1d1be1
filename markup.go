// Package markup implements a streaming builder for HTML and inline SVG content.  Rather than constructing a
// tree of nodes and serializing it afterward, a Builder writes markup into an append-only buffer as elements are
// opened, leaving a stack of open elements that are closed automatically when the document is rendered.  This
// makes it cheap to assemble large documents incrementally while still guaranteeing the output is balanced and
// properly escaped.
package markup

import (
	"fmt"
	"unicode/utf8"
)

// New starts a fragment builder using the provided schema.  A fragment has no implied root; any tag known to the
// schema may be opened at the top level, and the rendered output may contain any number of top level elements.
func New(schema *Schema, options ...Option) *Builder {
	b := &Builder{schema: schema, doctype: `html`}
	for _, option := range options {
		option(b)
	}
	return b
}

// NewDocument starts a document builder, emitting the doctype preamble and opening the schema's root element.
// The returned Elem is the handle for the root; once it is closed, no further top level elements may be opened.
func NewDocument(schema *Schema, options ...Option) (*Builder, *Elem, error) {
	b := New(schema, options...)
	b.document = true
	if schema.Root == `` {
		return nil, nil, fmt.Errorf(`%w: %s schema has no document root`, ErrSchema, schema.Name)
	}
	if b.doctype != `` {
		b.buf = append(b.buf, `<!doctype `...)
		b.buf = append(b.buf, b.doctype...)
		b.buf = append(b.buf, '>')
	}
	root, err := b.Open(schema.Root)
	if err != nil {
		return nil, nil, err
	}
	return b, root, nil
}

// XML makes the builder XML-compatible: void elements and empty elements are closed with " />" instead of relying
// on HTML parsing rules.  This is the mode to use when building inline SVG that may be consumed by XML tooling.
func XML() Option {
	return func(b *Builder) { b.xml = true }
}

// Doctype overrides the doctype preamble emitted by NewDocument.  The default is "html".
func Doctype(doctype string) Option {
	return func(b *Builder) { b.doctype = doctype }
}

// WithoutDoctype suppresses the doctype preamble emitted by NewDocument.
func WithoutDoctype() Option {
	return func(b *Builder) { b.doctype = `` }
}

// An Option affects a new Builder.
type Option func(*Builder)

// A Builder accumulates markup in an append-only buffer while tracking the stack of currently open elements.
// All operations apply to the innermost open element; there is no way to reach back and mutate content that has
// already been written.  Builders are not safe for concurrent use.
type Builder struct {
	schema   *Schema
	buf      []byte
	stack    []frame
	serial   uint64
	xml      bool
	document bool
	rooted   bool
	doctype  string
}

// frame is one open element on the stack.  While a frame is unsealed its opening tag has been written without the
// closing '>' so attributes can still be appended; the first child, text or close seals it.  Void frames are never
// sealed in place -- completing one writes the end of the tag and pops it immediately.
type frame struct {
	tag    *Tag
	serial uint64
	sealed bool
}

// Schema returns the schema the builder validates against.
func (b *Builder) Schema() *Schema { return b.schema }

// Depth returns the number of currently open elements.
func (b *Builder) Depth() int { return len(b.stack) }

// Open opens a child element under the innermost open element, leaving its opening tag unsealed so attributes may
// still be added.  The tag must be known to the schema, must not be a void element (use OpenVoid), and must be a
// permitted child of the current element.  On failure nothing is written.
func (b *Builder) Open(name string) (*Elem, error) {
	tag, err := b.checkOpen(name, false)
	if err != nil {
		return nil, err
	}
	depth := b.push(tag)
	return &Elem{b: b, tag: tag, depth: depth, serial: b.serial}, nil
}

// OpenVoid opens a void element under the innermost open element.  Void elements accept attributes but never
// children or text; the element is completed by Done, or automatically by the next operation on the builder.
func (b *Builder) OpenVoid(name string) (*Void, error) {
	tag, err := b.checkOpen(name, true)
	if err != nil {
		return nil, err
	}
	depth := b.push(tag)
	return &Void{b: b, tag: tag, depth: depth, serial: b.serial}, nil
}

// Attr adds an attribute to the innermost open element.  This fails if no element is open, if the element has
// already been sealed by child content, or if the schema does not permit the attribute on this tag.  The value is
// escaped and always rendered in double quotes.
func (b *Builder) Attr(name, value string) error {
	f, err := b.pending()
	if err != nil {
		return err
	}
	if !b.schema.allowsAttr(f.tag, name) {
		return fmt.Errorf(`%w: attribute %q is not permitted on <%s>`, ErrSchema, name, f.tag.Name)
	}
	b.buf = append(b.buf, ' ')
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, '=', '"')
	b.buf = AppendAttr(b.buf, value)
	b.buf = append(b.buf, '"')
	return nil
}

// BoolAttr adds a Boolean attribute, which renders as a bare name with no value.
func (b *Builder) BoolAttr(name string) error {
	f, err := b.pending()
	if err != nil {
		return err
	}
	if !b.schema.allowsBool(f.tag, name) {
		return fmt.Errorf(`%w: boolean attribute %q is not permitted on <%s>`, ErrSchema, name, f.tag.Name)
	}
	b.buf = append(b.buf, ' ')
	b.buf = append(b.buf, name...)
	return nil
}

// Text adds escaped text content to the innermost open element, sealing it if it was still accepting attributes.
// Text fails with ErrEmptyStack when no element is open to receive it.
func (b *Builder) Text(text string) error { return b.text(text, -1) }

// TextN adds the first n runes of text as escaped content.  A count exceeding the length of text fails with
// ErrInvalidLength before anything is written.
func (b *Builder) TextN(text string, n int) error {
	if n < 0 || n > utf8.RuneCountInString(text) {
		return fmt.Errorf(`%w: %d runes requested from %d`, ErrInvalidLength, n, utf8.RuneCountInString(text))
	}
	return b.text(text, n)
}

func (b *Builder) text(text string, n int) error {
	f := b.content()
	if f == nil {
		return fmt.Errorf(`%w: text outside any open element`, ErrEmptyStack)
	}
	if !f.tag.Text {
		return fmt.Errorf(`%w: text content is not permitted in <%s>`, ErrSchema, f.tag.Name)
	}
	b.completeVoid()
	b.sealTop()
	if n < 0 {
		b.buf = AppendText(b.buf, text)
	} else {
		b.buf = AppendTextN(b.buf, text, n)
	}
	return nil
}

// Raw adds trusted content verbatim, with no escaping.  The caller is responsible for the well-formedness and
// safety of the content; this is the only way to inject markup that bypasses the escaper.
func (b *Builder) Raw(trusted string) error {
	b.completeVoid()
	b.sealTop()
	b.buf = append(b.buf, trusted...)
	return nil
}

// Comment adds a comment, escaping '-', '<' and '>' so the content cannot terminate the comment early.
func (b *Builder) Comment(comment string) error {
	b.completeVoid()
	b.sealTop()
	b.buf = append(b.buf, `<!--`...)
	b.buf = appendComment(b.buf, comment)
	b.buf = append(b.buf, `-->`...)
	return nil
}

// Close ends the innermost open element, writing its closing tag.  A pending void element is completed first,
// since void elements take no closing tag.  Closing with no element open fails with ErrEmptyStack.
func (b *Builder) Close() error {
	b.completeVoid()
	if len(b.stack) == 0 {
		return fmt.Errorf(`%w: close with no open element`, ErrEmptyStack)
	}
	b.closeTop()
	return nil
}

// CloseAll closes every open element, innermost first.
func (b *Builder) CloseAll() {
	b.completeVoid()
	for len(b.stack) > 0 {
		b.closeTop()
	}
}

// String renders the markup built so far as if every open element were closed, innermost first.  The builder is
// not altered; String may be called repeatedly, before or after construction is complete, and always returns a
// fully balanced document.
func (b *Builder) String() string { return string(b.Bytes()) }

// Bytes is String without the string conversion.  The returned slice is a copy.
func (b *Builder) Bytes() []byte {
	out := append(make([]byte, 0, len(b.buf)+len(b.stack)*8), b.buf...)
	for i := len(b.stack) - 1; i >= 0; i-- {
		f := &b.stack[i]
		if !f.sealed {
			if f.tag.Void || b.xml {
				out = appendSelfClose(out, b.xml)
				continue
			}
			out = append(out, '>')
		}
		out = append(out, '<', '/')
		out = append(out, f.tag.Name...)
		out = append(out, '>')
	}
	return out
}

// Finish closes every open element in place and returns the document without copying the buffer.  The builder
// remains usable as a fragment builder afterward; further content is appended after the closed elements.
func (b *Builder) Finish() string {
	b.CloseAll()
	return string(b.buf)
}

// checkOpen validates an open operation without mutating anything.
func (b *Builder) checkOpen(name string, wantVoid bool) (*Tag, error) {
	tag := b.schema.Lookup(name)
	if tag == nil {
		return nil, fmt.Errorf(`%w: unknown tag <%s> in %s schema`, ErrSchema, name, b.schema.Name)
	}
	if tag.Void && !wantVoid {
		return nil, fmt.Errorf(`%w: <%s> is a void element; use OpenVoid`, ErrSchema, name)
	}
	if !tag.Void && wantVoid {
		return nil, fmt.Errorf(`%w: <%s> is not a void element`, ErrSchema, name)
	}
	parent := b.content()
	if parent == nil {
		if b.document {
			if b.rooted {
				return nil, fmt.Errorf(`%w: document already has a <%s> root`, ErrSchema, b.schema.Root)
			}
			if name != b.schema.Root {
				return nil, fmt.Errorf(`%w: <%s> cannot be the root of a %s document`, ErrSchema, name, b.schema.Name)
			}
		}
		return tag, nil
	}
	if !parent.tag.Children[name] {
		return nil, fmt.Errorf(`%w: <%s> is not permitted in <%s>`, ErrSchema, name, parent.tag.Name)
	}
	return tag, nil
}

// push seals the parent, writes the unsealed opening tag and pushes the new frame, returning its depth.
func (b *Builder) push(tag *Tag) int {
	b.completeVoid()
	b.sealTop()
	if len(b.stack) == 0 && b.document {
		b.rooted = true
	}
	b.buf = append(b.buf, '<')
	b.buf = append(b.buf, tag.Name...)
	b.serial++
	b.stack = append(b.stack, frame{tag: tag, serial: b.serial})
	return len(b.stack)
}

// content returns the frame that would receive child content: the top of the stack, or the frame beneath a
// pending void element, or nil at the top level.
func (b *Builder) content() *frame {
	n := len(b.stack)
	if n == 0 {
		return nil
	}
	if f := &b.stack[n-1]; !f.tag.Void {
		return f
	}
	if n == 1 {
		return nil
	}
	return &b.stack[n-2]
}

// pending returns the top frame if it is still accepting attributes.
func (b *Builder) pending() (*frame, error) {
	if len(b.stack) == 0 {
		return nil, fmt.Errorf(`%w: attribute with no open element`, ErrEmptyStack)
	}
	f := &b.stack[len(b.stack)-1]
	if f.sealed {
		return nil, fmt.Errorf(`%w: <%s> already has content`, ErrSealed, f.tag.Name)
	}
	return f, nil
}

// completeVoid finishes a pending void element at the top of the stack, writing the end of its tag and popping
// it.  Void elements never take closing tags, so this is the only way they leave the stack.
func (b *Builder) completeVoid() {
	n := len(b.stack)
	if n == 0 || !b.stack[n-1].tag.Void {
		return
	}
	b.buf = appendSelfClose(b.buf, b.xml)
	b.stack = b.stack[:n-1]
}

// sealTop writes the deferred '>' of the top frame's opening tag, ending its attribute phase.
func (b *Builder) sealTop() {
	if n := len(b.stack); n > 0 && !b.stack[n-1].sealed {
		b.buf = append(b.buf, '>')
		b.stack[n-1].sealed = true
	}
}

// closeTop closes the top frame.  An unsealed frame in XML mode collapses to a self-closing tag.
func (b *Builder) closeTop() {
	n := len(b.stack)
	f := &b.stack[n-1]
	if !f.sealed && b.xml {
		b.buf = appendSelfClose(b.buf, true)
		b.stack = b.stack[:n-1]
		return
	}
	b.sealTop()
	b.buf = append(b.buf, '<', '/')
	b.buf = append(b.buf, f.tag.Name...)
	b.buf = append(b.buf, '>')
	b.stack = b.stack[:n-1]
}

// live reports whether the identified frame is still on the stack.
func (b *Builder) live(depth int, serial uint64) bool {
	return depth >= 1 && depth <= len(b.stack) && b.stack[depth-1].serial == serial
}

// current reports whether the identified frame is the current insertion point: the top of the stack, or the frame
// directly beneath a pending void element.
func (b *Builder) current(depth int, serial uint64) bool {
	if !b.live(depth, serial) {
		return false
	}
	n := len(b.stack)
	return depth == n || (depth == n-1 && b.stack[n-1].tag.Void)
}

func appendSelfClose(buf []byte, xml bool) []byte {
	if xml {
		return append(buf, ' ', '/', '>')
	}
	return append(buf, '>')
}
