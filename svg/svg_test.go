package svg_test

import (
	"testing"

	markup "github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/svg"
)

func TestSchema(t *testing.T) {
	b := markup.New(svg.Schema(), markup.XML())
	root, err := b.Open(`svg`)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Attr(`viewBox`, `0 0 100 50`); err != nil {
		t.Fatal(err)
	}
	circle, err := root.Open(`circle`)
	if err != nil {
		t.Fatal(err)
	}
	for _, attr := range [][2]string{{`cx`, `50`}, {`cy`, `25`}, {`r`, `5`}} {
		if err := circle.Attr(attr[0], attr[1]); err != nil {
			t.Fatal(err)
		}
	}
	want := `<svg viewBox="0 0 100 50"><circle cx="50" cy="25" r="5" /></svg>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestSchemaPath(t *testing.T) {
	b := markup.New(svg.Schema(), markup.XML())
	root, err := b.Open(`svg`)
	if err != nil {
		t.Fatal(err)
	}
	path, err := root.Open(`path`)
	if err != nil {
		t.Fatal(err)
	}
	d := svg.NewPath().MoveTo(10, 10).Line(30, 10).Line(30, 30).ClosePath()
	if err := path.Attr(`d`, d.String()); err != nil {
		t.Fatal(err)
	}
	want := `<svg><path d="m10 10h20v20z" /></svg>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}

func TestSchemaRejectsUnknownChild(t *testing.T) {
	b := markup.New(svg.Schema(), markup.XML())
	root, err := b.Open(`svg`)
	if err != nil {
		t.Fatal(err)
	}
	gradient, err := root.Open(`linearGradient`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gradient.Open(`circle`); err == nil {
		t.Fatal(`expected an error opening circle inside linearGradient`)
	}
}

func TestSchemaText(t *testing.T) {
	b := markup.New(svg.Schema(), markup.XML())
	root, err := b.Open(`svg`)
	if err != nil {
		t.Fatal(err)
	}
	text, err := root.Open(`text`)
	if err != nil {
		t.Fatal(err)
	}
	if err := text.Attr(`x`, `5`); err != nil {
		t.Fatal(err)
	}
	if err := text.Text(`a < b`); err != nil {
		t.Fatal(err)
	}
	want := `<svg><text x="5">a &lt; b</text></svg>`
	if got := b.Finish(); got != want {
		t.Errorf(`got %q, want %q`, got, want)
	}
}
