package markup

import "strings"

// A Schema is the vocabulary a Builder validates against: the set of known tags, which attributes and children
// each permits, and which attributes are global.  Schemas are built once, up front, and must not be modified
// while any Builder is using them.  The html and svg packages provide ready-made schemas.
type Schema struct {
	// Name identifies the schema in error messages.
	Name string
	// Root is the tag NewDocument opens, e.g. "html".
	Root string

	globals     map[string]bool
	globalBools map[string]bool
	tags        map[string]*Tag
}

// NewSchema creates an empty schema.  root may be empty for schemas that only build fragments.
func NewSchema(name, root string) *Schema {
	return &Schema{
		Name:        name,
		Root:        root,
		globals:     make(map[string]bool),
		globalBools: make(map[string]bool),
		tags:        make(map[string]*Tag),
	}
}

// Global registers attribute names that are permitted on every tag in the schema.
func (s *Schema) Global(names ...string) {
	for _, name := range names {
		s.globals[name] = true
	}
}

// GlobalBool registers Boolean attribute names that are permitted on every tag in the schema.
func (s *Schema) GlobalBool(names ...string) {
	for _, name := range names {
		s.globalBools[name] = true
	}
}

// Define registers a normal element and returns it so its content model can be described.
func (s *Schema) Define(name string) *Tag {
	t := &Tag{
		Name:     name,
		Attrs:    make(map[string]bool),
		Bools:    make(map[string]bool),
		Children: make(map[string]bool),
	}
	s.tags[name] = t
	return t
}

// DefineVoid registers a void element: one that never contains children or text and takes no closing tag.
func (s *Schema) DefineVoid(name string) *Tag {
	t := s.Define(name)
	t.Void = true
	return t
}

// Lookup returns the named tag, or nil if the schema does not know it.
func (s *Schema) Lookup(name string) *Tag {
	return s.tags[name]
}

// allowsAttr reports whether the attribute may be set on the tag with a value.  Boolean attributes may also be
// written with an explicit value, and "data-" and "aria-" prefixed names are always permitted.
func (s *Schema) allowsAttr(t *Tag, name string) bool {
	if t.Attrs[name] || t.Bools[name] || s.globals[name] || s.globalBools[name] {
		return true
	}
	return wildcardAttr(name)
}

// allowsBool reports whether the attribute may be set on the tag as a bare Boolean.
func (s *Schema) allowsBool(t *Tag, name string) bool {
	if t.Bools[name] || s.globalBools[name] {
		return true
	}
	return wildcardAttr(name)
}

func wildcardAttr(name string) bool {
	return strings.HasPrefix(name, `data-`) || strings.HasPrefix(name, `aria-`)
}

// A Tag describes one element kind: whether it is void, whether character data is permitted inside it, and the
// attributes and child tags the schema allows.
type Tag struct {
	Name     string
	Void     bool
	Text     bool
	Attrs    map[string]bool
	Bools    map[string]bool
	Children map[string]bool
}

// AllowText permits character data inside the element.
func (t *Tag) AllowText() *Tag {
	t.Text = true
	return t
}

// AllowAttrs permits the named attributes, with values.
func (t *Tag) AllowAttrs(names ...string) *Tag {
	for _, name := range names {
		t.Attrs[name] = true
	}
	return t
}

// AllowBools permits the named Boolean attributes.
func (t *Tag) AllowBools(names ...string) *Tag {
	for _, name := range names {
		t.Bools[name] = true
	}
	return t
}

// AllowChildren permits the named child tags.
func (t *Tag) AllowChildren(names ...string) *Tag {
	for _, name := range names {
		t.Children[name] = true
	}
	return t
}
