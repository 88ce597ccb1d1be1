// Package html provides the HTML element vocabulary consumed by markup builders: which tags exist, which are
// void, and which attributes and children each permits.  The tables below are schema data transcribed from the
// MDN element reference; they contain no logic of their own.
package html

import markup "github.com/swdunlop/markup-go"

// Schema returns the shared HTML schema.  The schema is immutable and safe for concurrent use.
func Schema() *markup.Schema { return schema }

var schema = build()

// flow lists the tags permitted where flow content is expected, such as inside div or li.
var flow = []string{
	`a`, `abbr`, `address`, `article`, `aside`, `audio`, `b`, `bdi`, `bdo`, `blockquote`, `br`, `button`,
	`canvas`, `cite`, `code`, `data`, `datalist`, `del`, `details`, `dfn`, `dialog`, `div`, `dl`, `em`, `embed`,
	`fieldset`, `figure`, `footer`, `form`, `h1`, `h2`, `h3`, `h4`, `h5`, `h6`, `header`, `hgroup`, `hr`, `i`,
	`iframe`, `img`, `input`, `ins`, `kbd`, `label`, `main`, `map`, `mark`, `menu`, `meter`, `nav`, `noscript`,
	`object`, `ol`, `output`, `p`, `picture`, `pre`, `progress`, `q`, `ruby`, `s`, `samp`, `script`, `search`,
	`section`, `select`, `slot`, `small`, `span`, `strong`, `sub`, `sup`, `table`, `template`, `textarea`,
	`time`, `u`, `ul`, `var`, `video`, `wbr`,
}

// phrasing lists the tags permitted where phrasing content is expected, such as inside p or span.
var phrasing = []string{
	`a`, `abbr`, `area`, `audio`, `b`, `bdi`, `bdo`, `br`, `button`, `canvas`, `cite`, `code`, `data`,
	`datalist`, `del`, `dfn`, `em`, `embed`, `i`, `iframe`, `img`, `input`, `ins`, `kbd`, `label`, `link`,
	`map`, `mark`, `meta`, `meter`, `noscript`, `object`, `output`, `picture`, `progress`, `q`, `ruby`, `s`,
	`samp`, `script`, `select`, `slot`, `small`, `span`, `strong`, `sub`, `sup`, `template`, `textarea`,
	`time`, `u`, `var`, `video`, `wbr`,
}

// metadata lists the tags permitted inside head.
var metadata = []string{`base`, `link`, `meta`, `noscript`, `script`, `style`, `template`, `title`}

func build() *markup.Schema {
	s := markup.NewSchema(`html`, `html`)
	s.Global(
		`id`, `class`, `accesskey`, `autocapitalize`, `autocorrect`, `contenteditable`, `dir`, `draggable`,
		`enterkeyhint`, `exportparts`, `hidden`, `inputmode`, `is`, `itemid`, `itemprop`, `itemref`,
		`itemtype`, `lang`, `nonce`, `part`, `popover`, `role`, `slot`, `spellcheck`, `style`, `tabindex`,
		`title`, `translate`,
	)
	s.GlobalBool(`autofocus`, `inert`, `itemscope`)

	// helpers for the two big content models; anything unusual is spelled out below.
	flowTag := func(name string, attrs ...string) *markup.Tag {
		return s.Define(name).AllowText().AllowChildren(flow...).AllowAttrs(attrs...)
	}
	phrasingTag := func(name string, attrs ...string) *markup.Tag {
		return s.Define(name).AllowText().AllowChildren(phrasing...).AllowAttrs(attrs...)
	}

	// document structure
	s.Define(`html`).AllowChildren(`head`, `body`)
	s.Define(`head`).AllowChildren(metadata...)
	flowTag(`body`)
	s.Define(`title`).AllowText()
	s.Define(`style`).AllowText().AllowAttrs(`blocking`, `media`)
	s.Define(`script`).AllowText().
		AllowAttrs(`blocking`, `crossorigin`, `fetchpriority`, `integrity`, `referrerpolicy`, `src`, `type`).
		AllowBools(`async`, `defer`, `nomodule`)
	s.Define(`noscript`).AllowChildren(`link`, `meta`, `style`)
	s.Define(`template`).
		AllowAttrs(`shadowrootmode`, `shadowrootclonable`, `shadowrootdelegatesfocus`, `shadowrootserializable`)

	// void elements
	s.DefineVoid(`area`).
		AllowAttrs(`alt`, `coords`, `download`, `href`, `ping`, `referrerpolicy`, `rel`, `shape`, `target`)
	s.DefineVoid(`base`).AllowAttrs(`href`, `target`)
	s.DefineVoid(`br`)
	s.DefineVoid(`col`).AllowAttrs(`span`)
	s.DefineVoid(`embed`).AllowAttrs(`height`, `src`, `type`, `width`)
	s.DefineVoid(`hr`)
	s.DefineVoid(`img`).
		AllowAttrs(`alt`, `crossorigin`, `decoding`, `elementtiming`, `fetchpriority`, `height`, `loading`,
			`referrerpolicy`, `sizes`, `src`, `srcset`, `usemap`, `width`).
		AllowBools(`ismap`)
	s.DefineVoid(`input`).
		AllowAttrs(`accept`, `alt`, `autocomplete`, `capture`, `dirname`, `form`, `formaction`, `formenctype`,
			`formmethod`, `formtarget`, `height`, `list`, `max`, `maxlength`, `min`, `minlength`, `name`,
			`pattern`, `placeholder`, `popovertarget`, `popovertargetaction`, `size`, `src`, `step`, `type`,
			`value`, `width`).
		AllowBools(`checked`, `disabled`, `formnovalidate`, `multiple`, `readonly`, `required`)
	s.DefineVoid(`link`).
		AllowAttrs(`as`, `blocking`, `crossorigin`, `fetchpriority`, `href`, `hreflang`, `imagesizes`,
			`imagesrcset`, `integrity`, `media`, `referrerpolicy`, `rel`, `sizes`, `type`).
		AllowBools(`disabled`)
	s.DefineVoid(`meta`).AllowAttrs(`charset`, `content`, `http-equiv`, `media`, `name`)
	s.DefineVoid(`source`).AllowAttrs(`height`, `media`, `sizes`, `src`, `srcset`, `type`, `width`)
	s.DefineVoid(`track`).AllowAttrs(`kind`, `label`, `src`, `srclang`).AllowBools(`default`)
	s.DefineVoid(`wbr`)

	// sectioning and grouping
	flowTag(`address`)
	flowTag(`article`)
	flowTag(`aside`)
	flowTag(`blockquote`, `cite`)
	flowTag(`caption`)
	flowTag(`dd`)
	flowTag(`div`)
	flowTag(`dt`)
	flowTag(`figcaption`)
	s.Define(`figure`).AllowText().AllowChildren(flow...).AllowChildren(`figcaption`)
	flowTag(`footer`)
	flowTag(`form`, `accept-charset`, `action`, `autocomplete`, `enctype`, `method`, `name`, `rel`, `target`).
		AllowBools(`novalidate`)
	flowTag(`header`)
	flowTag(`li`, `value`)
	flowTag(`main`)
	s.Define(`map`).AllowText().AllowChildren(flow...).AllowChildren(`area`).AllowAttrs(`name`)
	flowTag(`nav`)
	flowTag(`search`)
	flowTag(`section`)
	flowTag(`td`, `colspan`, `headers`, `rowspan`)
	flowTag(`th`, `abbr`, `colspan`, `headers`, `rowspan`, `scope`)
	s.Define(`details`).AllowText().AllowChildren(flow...).AllowChildren(`summary`).
		AllowAttrs(`name`).AllowBools(`open`)
	flowTag(`dialog`, `closedby`).AllowBools(`open`)
	s.Define(`fieldset`).AllowText().AllowChildren(flow...).AllowChildren(`legend`).
		AllowAttrs(`form`, `name`).AllowBools(`disabled`)
	flowTag(`summary`)

	// headings and phrasing
	phrasingTag(`h1`)
	phrasingTag(`h2`)
	phrasingTag(`h3`)
	phrasingTag(`h4`)
	phrasingTag(`h5`)
	phrasingTag(`h6`)
	s.Define(`hgroup`).AllowChildren(`h1`, `h2`, `h3`, `h4`, `h5`, `h6`, `p`)
	phrasingTag(`p`)
	phrasingTag(`pre`)
	phrasingTag(`a`, `download`, `href`, `hreflang`, `ping`, `referrerpolicy`, `rel`, `target`, `type`)
	phrasingTag(`abbr`)
	phrasingTag(`b`)
	phrasingTag(`bdi`)
	phrasingTag(`bdo`)
	phrasingTag(`button`, `command`, `commandfor`, `form`, `formaction`, `formenctype`, `formmethod`,
		`formtarget`, `name`, `popovertarget`, `popovertargetaction`, `type`, `value`).
		AllowBools(`disabled`, `formnovalidate`)
	phrasingTag(`cite`)
	phrasingTag(`code`)
	phrasingTag(`data`, `value`)
	phrasingTag(`del`, `cite`, `datetime`)
	phrasingTag(`dfn`)
	phrasingTag(`em`)
	phrasingTag(`i`)
	phrasingTag(`ins`, `cite`, `datetime`)
	phrasingTag(`kbd`)
	phrasingTag(`label`, `for`)
	s.Define(`legend`).AllowText().AllowChildren(phrasing...).
		AllowChildren(`h1`, `h2`, `h3`, `h4`, `h5`, `h6`)
	phrasingTag(`mark`)
	phrasingTag(`meter`, `high`, `low`, `max`, `min`, `optimum`, `value`)
	phrasingTag(`output`, `for`, `form`, `name`)
	phrasingTag(`progress`, `max`, `value`)
	phrasingTag(`q`, `cite`)
	s.Define(`ruby`).AllowText().AllowChildren(phrasing...).AllowChildren(`rp`, `rt`)
	s.Define(`rp`).AllowText()
	s.Define(`rt`).AllowText()
	phrasingTag(`s`)
	phrasingTag(`samp`)
	s.Define(`slot`).AllowText().AllowAttrs(`name`)
	phrasingTag(`small`)
	phrasingTag(`span`)
	phrasingTag(`strong`)
	phrasingTag(`sub`)
	phrasingTag(`sup`)
	phrasingTag(`time`, `datetime`)
	phrasingTag(`u`)
	phrasingTag(`var`)

	// lists
	s.Define(`ul`).AllowChildren(`li`, `script`, `template`)
	s.Define(`ol`).AllowChildren(`li`, `script`, `template`).
		AllowAttrs(`start`, `type`).AllowBools(`reversed`)
	s.Define(`menu`).AllowChildren(`li`, `script`, `template`)
	s.Define(`dl`).AllowChildren(`dt`, `dd`, `script`, `template`)

	// tables
	s.Define(`table`).AllowChildren(`caption`, `colgroup`, `thead`, `tbody`, `tfoot`, `tr`, `script`, `template`)
	s.Define(`colgroup`).AllowChildren(`col`).AllowAttrs(`span`)
	s.Define(`thead`).AllowChildren(`tr`)
	s.Define(`tbody`).AllowChildren(`tr`)
	s.Define(`tfoot`).AllowChildren(`tr`)
	s.Define(`tr`).AllowChildren(`td`, `th`, `script`, `template`)

	// forms and controls
	s.Define(`select`).AllowChildren(`option`, `optgroup`, `hr`).
		AllowAttrs(`autocomplete`, `form`, `name`, `size`).AllowBools(`disabled`, `multiple`, `required`)
	s.Define(`optgroup`).AllowChildren(`option`, `legend`).
		AllowAttrs(`label`).AllowBools(`disabled`)
	s.Define(`option`).AllowText().AllowAttrs(`label`, `value`).AllowBools(`disabled`, `selected`)
	s.Define(`datalist`).AllowChildren(`option`)
	s.Define(`textarea`).AllowText().
		AllowAttrs(`autocomplete`, `cols`, `dirname`, `form`, `maxlength`, `minlength`, `name`,
			`placeholder`, `rows`, `wrap`).
		AllowBools(`disabled`, `readonly`, `required`)

	// embedded content
	s.Define(`audio`).AllowChildren(`source`, `track`).
		AllowAttrs(`controlslist`, `crossorigin`, `preload`, `src`).
		AllowBools(`autoplay`, `controls`, `disableremoteplayback`, `loop`)
	s.Define(`video`).AllowChildren(`source`, `track`).
		AllowAttrs(`controlslist`, `crossorigin`, `height`, `poster`, `preload`, `src`, `width`).
		AllowBools(`autoplay`, `controls`, `loop`, `muted`, `playsinline`)
	s.Define(`picture`).AllowChildren(`source`, `img`)
	s.Define(`canvas`).AllowAttrs(`height`, `width`)
	s.Define(`iframe`).
		AllowAttrs(`allow`, `height`, `loading`, `name`, `referrerpolicy`, `sandbox`, `src`, `srcdoc`, `width`)
	s.Define(`object`).AllowAttrs(`data`, `form`, `height`, `name`, `type`, `width`)

	return s
}
