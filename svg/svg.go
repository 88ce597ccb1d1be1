// Package svg provides the SVG element vocabulary for markup builders, along with small helpers for composing
// path definitions and polygon point lists.  SVG output is usually built with the XML option so empty elements
// collapse to self-closing tags.
package svg

import markup "github.com/swdunlop/markup-go"

// Schema returns the shared SVG schema.  The schema is immutable and safe for concurrent use.
func Schema() *markup.Schema { return schema }

var schema = build()

// graphics lists the shape and text tags permitted inside containers.
var graphics = []string{
	`circle`, `ellipse`, `image`, `line`, `path`, `polygon`, `polyline`, `rect`, `text`, `use`,
}

// containers lists the structural tags permitted inside containers.
var containers = []string{
	`a`, `defs`, `g`, `marker`, `mask`, `pattern`, `svg`, `switch`, `symbol`,
}

// descriptive lists the descriptive tags permitted inside nearly everything.
var descriptive = []string{`desc`, `metadata`, `title`}

// animation lists the animation tags permitted inside shapes and containers.
var animation = []string{`animate`, `animateMotion`, `animateTransform`, `mpath`, `set`}

// other lists the remaining tags permitted inside containers.
var other = []string{`clipPath`, `filter`, `foreignObject`, `script`, `style`, `view`}

// gradients lists the gradient tags permitted inside containers.
var gradients = []string{`linearGradient`, `radialGradient`, `stop`}

// timing lists the attributes shared by the animation elements.
var timing = []string{
	`attributeName`, `href`, `dur`, `begin`, `end`, `min`, `max`, `repeatCount`, `repeatDur`, `restart`,
	`fill`, `values`, `from`, `to`, `by`, `calcMode`, `keyPoints`, `keyTimes`, `keySplines`, `additive`,
	`accumulate`,
}

func build() *markup.Schema {
	s := markup.NewSchema(`svg`, `svg`)
	s.Global(`id`, `class`, `style`, `lang`, `tabindex`, `transform`)
	s.GlobalBool(`autofocus`)
	// presentation attributes apply to any element that renders.
	s.Global(
		`clip-path`, `clip-rule`, `color`, `cursor`, `display`, `dominant-baseline`, `fill`, `fill-opacity`,
		`fill-rule`, `filter`, `font-family`, `font-size`, `font-weight`, `letter-spacing`, `marker-end`,
		`marker-mid`, `marker-start`, `mask`, `opacity`, `paint-order`, `pointer-events`, `shape-rendering`,
		`stroke`, `stroke-dasharray`, `stroke-dashoffset`, `stroke-linecap`, `stroke-linejoin`,
		`stroke-miterlimit`, `stroke-opacity`, `stroke-width`, `text-anchor`, `vector-effect`, `visibility`,
		`word-spacing`,
	)

	content := make([]string, 0, 48)
	content = append(content, graphics...)
	content = append(content, containers...)
	content = append(content, descriptive...)
	content = append(content, gradients...)
	content = append(content, animation...)
	content = append(content, other...)

	container := func(name string, attrs ...string) *markup.Tag {
		return s.Define(name).AllowChildren(content...).AllowAttrs(attrs...)
	}
	shape := func(name string, attrs ...string) *markup.Tag {
		return s.Define(name).AllowChildren(descriptive...).AllowChildren(animation...).AllowAttrs(attrs...)
	}

	container(`svg`, `viewBox`, `height`, `width`, `x`, `y`, `preserveAspectRatio`, `xmlns`)
	container(`a`, `download`, `href`, `hreflang`, `ping`, `referrerpolicy`, `rel`, `target`, `type`)
	container(`defs`)
	container(`g`)
	container(`marker`,
		`markerHeight`, `markerUnits`, `markerWidth`, `orient`, `refX`, `refY`, `viewBox`,
		`preserveAspectRatio`)
	container(`mask`, `height`, `maskContentUnits`, `maskUnits`, `width`, `x`, `y`)
	container(`pattern`,
		`height`, `href`, `patternContentUnits`, `patternTransform`, `patternUnits`, `preserveAspectRatio`,
		`viewBox`, `width`, `x`, `y`)
	container(`switch`)
	container(`symbol`, `height`, `preserveAspectRatio`, `refX`, `refY`, `viewBox`, `width`, `x`, `y`)

	shape(`circle`, `cx`, `cy`, `r`, `pathLength`)
	shape(`ellipse`, `cx`, `cy`, `rx`, `ry`, `pathLength`)
	shape(`image`, `crossorigin`, `decoding`, `height`, `href`, `preserveAspectRatio`, `width`, `x`, `y`)
	shape(`line`, `pathLength`, `x1`, `x2`, `y1`, `y2`)
	shape(`path`, `d`, `pathLength`)
	shape(`polygon`, `pathLength`, `points`)
	shape(`polyline`, `pathLength`, `points`)
	shape(`rect`, `height`, `pathLength`, `rx`, `ry`, `width`, `x`, `y`)
	shape(`use`, `height`, `href`, `width`, `x`, `y`)

	s.Define(`text`).AllowText().AllowChildren(descriptive...).AllowChildren(animation...).
		AllowChildren(`a`, `tspan`, `textPath`).
		AllowAttrs(`dx`, `dy`, `lengthAdjust`, `rotate`, `textLength`, `x`, `y`)
	s.Define(`tspan`).AllowText().AllowChildren(`a`, `tspan`).
		AllowAttrs(`dx`, `dy`, `lengthAdjust`, `rotate`, `textLength`, `x`, `y`)
	s.Define(`textPath`).AllowText().AllowChildren(`a`, `tspan`).
		AllowAttrs(`href`, `lengthAdjust`, `method`, `path`, `side`, `spacing`, `startOffset`, `textLength`)

	s.Define(`desc`).AllowText()
	s.Define(`title`).AllowText()
	s.Define(`metadata`).AllowText()
	s.Define(`script`).AllowText().AllowAttrs(`crossorigin`, `href`, `type`)
	s.Define(`style`).AllowText().AllowAttrs(`media`, `type`)
	s.Define(`view`).AllowChildren(descriptive...).AllowAttrs(`preserveAspectRatio`, `viewBox`)

	s.Define(`linearGradient`).AllowChildren(`stop`).AllowChildren(animation...).
		AllowAttrs(`gradientTransform`, `gradientUnits`, `href`, `spreadMethod`, `x1`, `x2`, `y1`, `y2`)
	s.Define(`radialGradient`).AllowChildren(`stop`).AllowChildren(animation...).
		AllowAttrs(`cx`, `cy`, `fr`, `fx`, `fy`, `gradientTransform`, `gradientUnits`, `href`, `r`,
			`spreadMethod`)
	s.Define(`stop`).AllowChildren(animation...).AllowAttrs(`offset`, `stop-color`, `stop-opacity`)

	s.Define(`clipPath`).AllowChildren(graphics...).AllowChildren(descriptive...).
		AllowAttrs(`clipPathUnits`)
	s.Define(`filter`).AllowAttrs(`filterUnits`, `height`, `primitiveUnits`, `width`, `x`, `y`)
	s.Define(`foreignObject`).AllowText().AllowAttrs(`height`, `width`, `x`, `y`)

	s.Define(`animate`).AllowChildren(descriptive...).AllowAttrs(timing...)
	s.Define(`animateMotion`).AllowChildren(descriptive...).AllowChildren(`mpath`).
		AllowAttrs(timing...).AllowAttrs(`path`, `rotate`)
	s.Define(`animateTransform`).AllowChildren(descriptive...).AllowAttrs(timing...).AllowAttrs(`type`)
	s.Define(`mpath`).AllowChildren(descriptive...).AllowAttrs(`href`)
	s.Define(`set`).AllowChildren(descriptive...).AllowAttrs(timing...)

	return s
}
