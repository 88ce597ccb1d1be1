// Package tag provides CSS selector style shorthand for opening elements.  An expression like
// `div#main.card.wide[title=Report]` opens a `div`, sets its id, joins the classes into a single class
// attribute, and applies any bracketed attributes in order.  A bracketed name without a value, like
// `button[disabled]`, applies a boolean attribute.
package tag

import (
	"fmt"
	"strings"

	markup "github.com/swdunlop/markup-go"
)

// Open opens an element described by the expression at the top of the builder.
func Open(b *markup.Builder, expr string) (*markup.Elem, error) {
	return open(b, expr)
}

// OpenIn opens an element described by the expression inside the parent element.
func OpenIn(parent *markup.Elem, expr string) (*markup.Elem, error) {
	return open(parent, expr)
}

// Void opens a void element described by the expression at the top of the builder.
func Void(b *markup.Builder, expr string) (*markup.Void, error) {
	return openVoid(b, expr)
}

// VoidIn opens a void element described by the expression inside the parent element.
func VoidIn(parent *markup.Elem, expr string) (*markup.Void, error) {
	return openVoid(parent, expr)
}

// An opener is either a Builder or an Elem.
type opener interface {
	Open(name string) (*markup.Elem, error)
	OpenVoid(name string) (*markup.Void, error)
}

// an attrer is either an Elem or a Void.
type attrer interface {
	Attr(name, value string) error
	BoolAttr(name string) error
}

func open(in opener, expr string) (*markup.Elem, error) {
	sel, err := parse(expr)
	if err != nil {
		return nil, err
	}
	elem, err := in.Open(sel.name)
	if err != nil {
		return nil, err
	}
	if err := sel.apply(elem); err != nil {
		return nil, err
	}
	return elem, nil
}

func openVoid(in opener, expr string) (*markup.Void, error) {
	sel, err := parse(expr)
	if err != nil {
		return nil, err
	}
	void, err := in.OpenVoid(sel.name)
	if err != nil {
		return nil, err
	}
	if err := sel.apply(void); err != nil {
		return nil, err
	}
	return void, nil
}

// A selector is a parsed expression.  Classes are gathered into a single class attribute placed where the
// first class appeared.
type selector struct {
	name    string
	attrs   []attr
	classes []string
}

type attr struct {
	name  string
	value string
	bare  bool
	class bool
}

func (sel *selector) apply(to attrer) error {
	for _, a := range sel.attrs {
		var err error
		switch {
		case a.class:
			err = to.Attr(`class`, strings.Join(sel.classes, ` `))
		case a.bare:
			err = to.BoolAttr(a.name)
		default:
			err = to.Attr(a.name, a.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parse(expr string) (*selector, error) {
	sel := &selector{}
	rest := expr
	ix := strings.IndexAny(rest, `#.[`)
	if ix < 0 {
		sel.name, rest = rest, ``
	} else {
		sel.name, rest = rest[:ix], rest[ix:]
	}
	if sel.name == `` {
		sel.name = `div`
	}
	for rest != `` {
		switch rest[0] {
		case '#':
			rest = rest[1:]
			ix := strings.IndexAny(rest, `#.[`)
			if ix < 0 {
				ix = len(rest)
			}
			if ix == 0 {
				return nil, fmt.Errorf(`empty id in tag expression %q`, expr)
			}
			sel.attrs = append(sel.attrs, attr{name: `id`, value: rest[:ix]})
			rest = rest[ix:]
		case '.':
			rest = rest[1:]
			ix := strings.IndexAny(rest, `#.[`)
			if ix < 0 {
				ix = len(rest)
			}
			if ix == 0 {
				return nil, fmt.Errorf(`empty class in tag expression %q`, expr)
			}
			if len(sel.classes) == 0 {
				sel.attrs = append(sel.attrs, attr{class: true})
			}
			sel.classes = append(sel.classes, rest[:ix])
			rest = rest[ix:]
		case '[':
			rest = rest[1:]
			ix := strings.IndexByte(rest, ']')
			if ix < 0 {
				return nil, fmt.Errorf(`unterminated attribute in tag expression %q`, expr)
			}
			name, value := rest[:ix], ``
			rest = rest[ix+1:]
			eq := strings.IndexByte(name, '=')
			if eq >= 0 {
				name, value = name[:eq], name[eq+1:]
			}
			if name == `` {
				return nil, fmt.Errorf(`empty attribute name in tag expression %q`, expr)
			}
			if eq < 0 {
				sel.attrs = append(sel.attrs, attr{name: name, bare: true})
				continue
			}
			if name == `class` {
				if len(sel.classes) == 0 {
					sel.attrs = append(sel.attrs, attr{class: true})
				}
				sel.classes = append(sel.classes, value)
				continue
			}
			sel.attrs = append(sel.attrs, attr{name: name, value: value})
		}
	}
	return sel, nil
}
