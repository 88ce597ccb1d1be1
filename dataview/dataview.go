// Package dataview renders Go values as tabular HTML if the values can be represented as JSON.
package dataview

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	markup "github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/tag"
	"github.com/tidwall/gjson"
)

// Stylesheet will return the structural CSS needed to render the dataview.  The options are currently ignored,
// but are present in case we need to add options like a class prefix in the future.
func Stylesheet(options ...Option) string {
	return stylesheet
}

const stylesheet = `
.object, .array, .table { display: grid; width: fit-content; }
.row { display: contents; }
.object { grid-template-columns: minmax(min-content, max-content) 1fr; }
`

// From renders a Go value inside the provided element, converting it into JSON first and parsing it with GJSON.
func From(in *markup.Elem, data any, options ...Option) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return FromJSON(in, js, options...)
}

// FromJSON renders a JSON document inside the provided element, parsing it with GJSON -- the provided JSON MUST
// be valid.
func FromJSON(in *markup.Elem, js []byte, options ...Option) error {
	return FromGJSON(in, gjson.ParseBytes(js), options...)
}

// FromGJSON renders a GJSON result inside the provided element.  This is the most efficient way to use dataview
// if you already have a GJSON result.
func FromGJSON(in *markup.Elem, data gjson.Result, options ...Option) error {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	return cfg.render(in, data, ``)
}

// Hook registers a function that replaces how a value is rendered if the path to the value matches the provided
// pattern.  The function should report true if it rendered the value; otherwise the default rendering is used.
//
// Patterns are regex patterns that match paths like .persons.0.name or .persons.0.address.city.
func Hook(rx *regexp.Regexp, hookFn func(in *markup.Elem, path string, data gjson.Result) (bool, error)) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, hook{rx, hookFn})
	}
}

// TableHook registers a function that converts an array containing at least one object into some other GJSON
// result if the path to the array matches the provided pattern.  TableHooks are applied before Hooks and use the
// same path syntax.
func TableHook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) gjson.Result) Option {
	return func(cfg *config) {
		cfg.tableHooks = append(cfg.tableHooks, tableHook{rx, hookFn})
	}
}

type Option func(*config)

type config struct {
	hooks      []hook
	tableHooks []tableHook
}

type hook struct {
	rx   *regexp.Regexp
	hook func(in *markup.Elem, path string, data gjson.Result) (bool, error)
}

type tableHook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) gjson.Result
}

func (cfg *config) render(in *markup.Elem, data gjson.Result, path string) error {
	if isTabular(data) {
		for _, hook := range cfg.tableHooks {
			if hook.rx.MatchString(path) {
				data = hook.hook(path, data)
				if !isTabular(data) {
					return cfg.renderValue(in, data, path)
				}
			}
		}
		for _, hook := range cfg.hooks {
			if hook.rx.MatchString(path) {
				done, err := hook.hook(in, path, data)
				if err != nil || done {
					return err
				}
			}
		}
		return cfg.renderTable(in, data, path)
	}
	return cfg.renderValue(in, data, path)
}

func (cfg *config) renderValue(in *markup.Elem, data gjson.Result, path string) error {
	for _, hook := range cfg.hooks {
		if hook.rx.MatchString(path) {
			done, err := hook.hook(in, path, data)
			if err != nil || done {
				return err
			}
		}
	}
	switch data.Type {
	case gjson.Null:
		return leaf(in, `span.null`, `null`)
	case gjson.False:
		return leaf(in, `span.bool`, `false`)
	case gjson.True:
		return leaf(in, `span.bool`, `true`)
	case gjson.Number:
		if len(data.Raw) > 0 {
			return in.Text(data.Raw)
		}
		return in.Text(data.String())
	case gjson.String:
		return in.Text(data.String())
	default:
		switch {
		case data.IsArray():
			return cfg.renderArray(in, data, path)
		case data.IsObject():
			return cfg.renderObject(in, data, path)
		}
	}
	return fmt.Errorf(`unknown gjson type %v at %q`, data.Type, path)
}

// leaf opens an element described by the expression, fills it with text, and closes it.
func leaf(in *markup.Elem, expr, text string) error {
	elem, err := tag.OpenIn(in, expr)
	if err != nil {
		return err
	}
	if err := elem.Text(text); err != nil {
		return err
	}
	return elem.Close()
}

func (cfg *config) renderArray(in *markup.Elem, data gjson.Result, path string) error {
	seq := data.Array()
	if len(seq) == 0 {
		return leaf(in, `div.array.empty`, `[]`)
	}
	array, err := tag.OpenIn(in, `div.array`)
	if err != nil {
		return err
	}
	path += `.`
	for ix, value := range seq {
		cell, err := tag.OpenIn(array, `div.value`)
		if err != nil {
			return err
		}
		if err := cfg.render(cell, value, path+strconv.Itoa(ix)); err != nil {
			return err
		}
		if err := cell.Close(); err != nil {
			return err
		}
	}
	return array.Close()
}

func (cfg *config) renderTable(in *markup.Elem, data gjson.Result, path string) error {
	seq := data.Array()
	// We do two passes, one to identify all of the keys of any embedded objects, and another to build a table
	// where each item has a row.
	//
	// If there are no embedded objects, we show a single column table with no heading.
	// Otherwise, we show a table with one column per key, with a heading row.
	//
	// This must tolerate mixtures of objects and slices or literals.
	var columns = struct {
		labels []string
		index  map[string]int
	}{
		make([]string, 0, 32),
		make(map[string]int, 32),
	}

	for _, value := range seq {
		if value.IsObject() {
			value.ForEach(func(key, _ gjson.Result) bool {
				if _, ok := columns.index[key.Str]; !ok {
					columns.index[key.Str] = len(columns.labels)
					columns.labels = append(columns.labels, key.Str)
				}
				return true
			})
		}
	}

	table, err := tag.OpenIn(in, `div.table`)
	if err != nil {
		return err
	}
	err = table.Attr(`style`, fmt.Sprint(
		`grid-template-columns: repeat(`, len(columns.labels), `, minmax(min-content, max-content));`,
	))
	if err != nil {
		return err
	}
	for _, label := range columns.labels {
		header, err := tag.OpenIn(table, `div.header.label`)
		if err != nil {
			return err
		}
		if err := header.Text(label); err != nil {
			return err
		}
		if err := header.Close(); err != nil {
			return err
		}
	}
	path += `.`
	for ix, value := range seq {
		row, err := tag.OpenIn(table, `div.row`)
		if err != nil {
			return err
		}
		at := path + strconv.Itoa(ix)
		if value.IsObject() {
			for _, label := range columns.labels {
				data := value.Get(label)
				switch {
				case data.Exists():
					cell, err := tag.OpenIn(row, `div.value`)
					if err != nil {
						return err
					}
					if err := cfg.render(cell, data, at+`.`+label); err != nil {
						return err
					}
					if err := cell.Close(); err != nil {
						return err
					}
				default:
					cell, err := tag.OpenIn(row, `div.value.na`)
					if err != nil {
						return err
					}
					if err := cell.Text(`N/A`); err != nil {
						return err
					}
					if err := cell.Close(); err != nil {
						return err
					}
				}
			}
		} else {
			cell, err := tag.OpenIn(row, `div.value[style=grid-column: 1/-1;]`)
			if err != nil {
				return err
			}
			if err := cfg.render(cell, value, at); err != nil {
				return err
			}
			if err := cell.Close(); err != nil {
				return err
			}
		}
		if err := row.Close(); err != nil {
			return err
		}
	}
	return table.Close()
}

func (cfg *config) renderObject(in *markup.Elem, data gjson.Result, path string) error {
	// We show objects as a table with two columns, one for the keys, and one for the values.
	object, err := tag.OpenIn(in, `div.object`)
	if err != nil {
		return err
	}
	path += `.`
	var failed error
	data.ForEach(func(key, value gjson.Result) bool {
		label, err := tag.OpenIn(object, `div.key.label`)
		if err == nil {
			err = label.Text(key.Str)
		}
		if err == nil {
			err = label.Close()
		}
		var cell *markup.Elem
		if err == nil {
			cell, err = tag.OpenIn(object, `div.value`)
		}
		if err == nil {
			err = cfg.render(cell, value, path+key.Str)
		}
		if err == nil {
			err = cell.Close()
		}
		failed = err
		return err == nil
	})
	if failed != nil {
		return failed
	}
	return object.Close()
}

func isTabular(data gjson.Result) bool {
	if !data.IsArray() {
		return false
	}
	tabular := false
	data.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			tabular = true
			return false
		}
		return true
	})
	return tabular
}
