package markup_test

import (
	"errors"
	"strings"
	"testing"

	markup "github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/html"
)

func TestAutoClose(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	p, err := div.Open(`p`)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Text(`hi`); err != nil {
		t.Fatal(err)
	}
	want := `<div><p>hi</p></div>`
	if got := b.String(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
	// rendering closes nothing in place; a second render must match the first.
	if got := b.String(); got != want {
		t.Errorf(`second render got %q, want %q`, got, want)
	}
	if b.Depth() != 2 {
		t.Errorf(`expected 2 open elements, got %v`, b.Depth())
	}
	if got := b.Finish(); got != want {
		t.Errorf(`finish got %q, want %q`, got, want)
	}
}

func TestAttrs(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`id`, `a`); err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`class`, `b c`); err != nil {
		t.Fatal(err)
	}
	want := `<div id="a" class="b c"></div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestAttrEscape(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`title`, `say "hi" & go`); err != nil {
		t.Fatal(err)
	}
	want := `<div title="say &quot;hi&quot; &amp; go"></div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestTextEscape(t *testing.T) {
	b := markup.New(html.Schema())
	em, err := b.Open(`em`)
	if err != nil {
		t.Fatal(err)
	}
	if err := em.Text(`You & I < them > us`); err != nil {
		t.Fatal(err)
	}
	want := `<em>You &amp; I &lt; them &gt; us</em>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestRaw(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Text(`<b>`); err != nil {
		t.Fatal(err)
	}
	if err := div.Raw(`<b>bold</b>`); err != nil {
		t.Fatal(err)
	}
	want := `<div>&lt;b&gt;<b>bold</b></div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestVoid(t *testing.T) {
	b := markup.New(html.Schema())
	img, err := b.OpenVoid(`img`)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.Attr(`src`, `nori.webp`); err != nil {
		t.Fatal(err)
	}
	want := `<img src="nori.webp">`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestVoidAutoComplete(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	br, err := div.OpenVoid(`br`)
	if err != nil {
		t.Fatal(err)
	}
	// the next text operation ends the pending void element.
	if err := div.Text(`after`); err != nil {
		t.Fatal(err)
	}
	if err := br.Attr(`id`, `late`); !errors.Is(err, markup.ErrStaleHandle) {
		t.Errorf(`expected a stale handle error, got %v`, err)
	}
	want := `<div><br>after</div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestVoidMismatch(t *testing.T) {
	b := markup.New(html.Schema())
	if _, err := b.Open(`img`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error opening img with Open, got %v`, err)
	}
	if _, err := b.OpenVoid(`div`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error opening div with OpenVoid, got %v`, err)
	}
}

func TestSchemaViolation(t *testing.T) {
	b := markup.New(html.Schema())
	body, err := b.Open(`body`)
	if err != nil {
		t.Fatal(err)
	}
	before := b.String()
	if _, err := body.Open(`tr`); !errors.Is(err, markup.ErrSchema) {
		t.Fatalf(`expected a schema error opening tr in body, got %v`, err)
	}
	if after := b.String(); after != before {
		t.Errorf(`output changed by a rejected operation: %q became %q`, before, after)
	}
}

func TestUnknownTag(t *testing.T) {
	b := markup.New(html.Schema())
	if _, err := b.Open(`blink`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error, got %v`, err)
	}
}

func TestUnknownAttr(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`cite`, `x`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error, got %v`, err)
	}
	// data- and aria- attributes are permitted everywhere.
	if err := div.Attr(`data-cat`, `nori`); err != nil {
		t.Error(err)
	}
	if err := div.Attr(`aria-label`, `cat`); err != nil {
		t.Error(err)
	}
}

func TestSealed(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Text(`content`); err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`id`, `late`); !errors.Is(err, markup.ErrSealed) {
		t.Errorf(`expected a sealed error, got %v`, err)
	}
}

func TestEmptyStack(t *testing.T) {
	b := markup.New(html.Schema())
	if err := b.Close(); !errors.Is(err, markup.ErrEmptyStack) {
		t.Errorf(`expected an empty stack error, got %v`, err)
	}
	if err := b.Attr(`id`, `x`); !errors.Is(err, markup.ErrEmptyStack) {
		t.Errorf(`expected an empty stack error, got %v`, err)
	}
}

func TestTextN(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.TextN(`héllo`, 2); err != nil {
		t.Fatal(err)
	}
	if err := div.TextN(`a&b`, 3); err != nil {
		t.Fatal(err)
	}
	if err := div.TextN(`nori`, 9); !errors.Is(err, markup.ErrInvalidLength) {
		t.Errorf(`expected an invalid length error, got %v`, err)
	}
	want := `<div>héa&amp;b</div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestStaleHandle(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	p, err := div.Open(`p`)
	if err != nil {
		t.Fatal(err)
	}
	// div is superseded while p is open.
	if err := div.Text(`no`); !errors.Is(err, markup.ErrStaleHandle) {
		t.Errorf(`expected a stale handle error, got %v`, err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	// with p closed, div is the insertion point again.
	if err := div.Text(`yes`); err != nil {
		t.Fatal(err)
	}
	if err := p.Text(`no`); !errors.Is(err, markup.ErrStaleHandle) {
		t.Errorf(`expected a stale handle error, got %v`, err)
	}
	if err := p.Close(); !errors.Is(err, markup.ErrStaleHandle) {
		t.Errorf(`expected a stale handle error, got %v`, err)
	}
	want := `<div><p></p>yes</div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestCloseDescendants(t *testing.T) {
	b := markup.New(html.Schema())
	ol, err := b.Open(`ol`)
	if err != nil {
		t.Fatal(err)
	}
	li, err := ol.Open(`li`)
	if err != nil {
		t.Fatal(err)
	}
	if err := li.Attr(`class`, `cat`); err != nil {
		t.Fatal(err)
	}
	if err := li.Text(`nori`); err != nil {
		t.Fatal(err)
	}
	span, err := li.Open(`span`)
	if err != nil {
		t.Fatal(err)
	}
	if err := span.Text(`!`); err != nil {
		t.Fatal(err)
	}
	// closing ol closes the still-open li and span first.
	if err := ol.Close(); err != nil {
		t.Fatal(err)
	}
	want := `<ol><li class="cat">nori<span>!</span></li></ol>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestComment(t *testing.T) {
	b := markup.New(html.Schema())
	if err := b.Comment(`x - y <z>`); err != nil {
		t.Fatal(err)
	}
	want := `<!--x &hyphen; y &lt;z&gt;-->`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestXML(t *testing.T) {
	b := markup.New(html.Schema(), markup.XML())
	link, err := b.OpenVoid(`link`)
	if err != nil {
		t.Fatal(err)
	}
	if err := link.Attr(`rel`, `stylesheet`); err != nil {
		t.Fatal(err)
	}
	want := `<link rel="stylesheet" />`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestXMLEmptyElement(t *testing.T) {
	b := markup.New(html.Schema(), markup.XML())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if err := div.Attr(`id`, `spacer`); err != nil {
		t.Fatal(err)
	}
	// an unsealed element collapses whether rendered mid-build or closed.
	want := `<div id="spacer" />`
	if got := b.String(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestDocument(t *testing.T) {
	b, root, err := markup.NewDocument(html.Schema())
	if err != nil {
		t.Fatal(err)
	}
	body, err := root.Open(`body`)
	if err != nil {
		t.Fatal(err)
	}
	if err := body.Text(`hi`); err != nil {
		t.Fatal(err)
	}
	want := `<!doctype html><html><body>hi</body></html>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
	// a finished document has exactly one root.
	if _, err := b.Open(`html`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error opening a second root, got %v`, err)
	}
}

func TestDocumentRoot(t *testing.T) {
	b, _, err := markup.NewDocument(html.Schema(), markup.WithoutDoctype())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), `<html>`) {
		t.Errorf(`expected the document to open with its root, got %q`, b.String())
	}
}

func TestBoolAttr(t *testing.T) {
	b := markup.New(html.Schema())
	button, err := b.Open(`button`)
	if err != nil {
		t.Fatal(err)
	}
	if err := button.BoolAttr(`disabled`); err != nil {
		t.Fatal(err)
	}
	if err := button.BoolAttr(`spellcheck`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error, got %v`, err)
	}
	want := `<button disabled></button>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestFragmentRoots(t *testing.T) {
	b := markup.New(html.Schema())
	for _, text := range []string{`one`, `two`} {
		div, err := b.Open(`div`)
		if err != nil {
			t.Fatal(err)
		}
		if err := div.Text(text); err != nil {
			t.Fatal(err)
		}
		if err := div.Close(); err != nil {
			t.Fatal(err)
		}
	}
	want := `<div>one</div><div>two</div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestTextGate(t *testing.T) {
	b := markup.New(html.Schema())
	ul, err := b.Open(`ul`)
	if err != nil {
		t.Fatal(err)
	}
	if err := ul.Text(`loose`); !errors.Is(err, markup.ErrSchema) {
		t.Errorf(`expected a schema error adding text to ul, got %v`, err)
	}
}

func TestTextTopLevel(t *testing.T) {
	b := markup.New(html.Schema())
	if err := b.Text(`loose`); !errors.Is(err, markup.ErrEmptyStack) {
		t.Errorf(`expected an empty stack error for top-level text, got %v`, err)
	}
	if err := b.TextN(`loose`, 3); !errors.Is(err, markup.ErrEmptyStack) {
		t.Errorf(`expected an empty stack error for top-level text, got %v`, err)
	}
	if got := b.Finish(); got != `` {
		t.Errorf(`expected no output, got %q`, got)
	}
}

func TestTextAfterRoot(t *testing.T) {
	b, root, err := markup.NewDocument(html.Schema(), markup.WithoutDoctype())
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Close(); err != nil {
		t.Fatal(err)
	}
	if err := b.Text(`after`); !errors.Is(err, markup.ErrEmptyStack) {
		t.Errorf(`expected an empty stack error after the root closed, got %v`, err)
	}
	want := `<html></html>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestRenderMidBuild(t *testing.T) {
	b := markup.New(html.Schema())
	div, err := b.Open(`div`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), `<div></div>`; got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
	// the unsealed element still accepts attributes after rendering.
	if err := div.Attr(`id`, `still`); err != nil {
		t.Fatal(err)
	}
	want := `<div id="still"></div>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}
