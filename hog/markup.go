package hog

import (
	"encoding/hex"
	"net/http"

	"golang.org/x/crypto/blake2b"

	markup "github.com/swdunlop/markup-go"
)

// Markup returns a handler that responds with the document produced by the build function.  The document is
// hashed with BLAKE2b to produce a strong ETag, and requests whose If-None-Match header already carries that
// tag get a 304 without the body.  Build errors are logged and answered with a plain 500.
func Markup(build func(r *http.Request) (*markup.Builder, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := build(r)
		if err != nil {
			From(r.Context()).Err(err).Msg(`failed to build markup`)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		doc := b.Finish()
		From(r.Context()).Debug().Int(`size`, len(doc)).Msg(`built markup`)
		sum := blake2b.Sum256([]byte(doc))
		etag := `"` + hex.EncodeToString(sum[:16]) + `"`
		w.Header().Set(`ETag`, etag)
		if match := r.Header.Get(`If-None-Match`); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
		_, _ = w.Write([]byte(doc))
	})
}
