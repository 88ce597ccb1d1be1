package markup

// AppendText appends text to buf, replacing '&', '<' and '>' with character references.
func AppendText(buf []byte, text string) []byte {
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '&':
			buf = append(buf, `&amp;`...)
		case '<':
			buf = append(buf, `&lt;`...)
		case '>':
			buf = append(buf, `&gt;`...)
		default:
			buf = append(buf, c)
		}
	}
	return buf
}

// AppendTextN appends the first n runes of text to buf, escaped as AppendText does.  The caller must ensure n
// does not exceed the rune count of text.
func AppendTextN(buf []byte, text string, n int) []byte {
	taken := 0
	for i := 0; i < len(text) && taken < n; {
		c := text[i]
		switch {
		case c == '&':
			buf = append(buf, `&amp;`...)
			i++
		case c == '<':
			buf = append(buf, `&lt;`...)
			i++
		case c == '>':
			buf = append(buf, `&gt;`...)
			i++
		case c < 0x80:
			buf = append(buf, c)
			i++
		default:
			w := 1
			for i+w < len(text) && text[i+w]&0xC0 == 0x80 {
				w++
			}
			buf = append(buf, text[i:i+w]...)
			i += w
		}
		taken++
	}
	return buf
}

// AppendAttr appends an attribute value to buf, replacing '&' and '"' with character references.  Values are
// always rendered in double quotes, so '<' and '>' need no escaping.
func AppendAttr(buf []byte, value string) []byte {
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '&':
			buf = append(buf, `&amp;`...)
		case '"':
			buf = append(buf, `&quot;`...)
		default:
			buf = append(buf, c)
		}
	}
	return buf
}

// appendComment escapes comment content so it cannot terminate the enclosing comment.
func appendComment(buf []byte, comment string) []byte {
	for i := 0; i < len(comment); i++ {
		switch c := comment[i]; c {
		case '-':
			buf = append(buf, `&hyphen;`...)
		case '<':
			buf = append(buf, `&lt;`...)
		case '>':
			buf = append(buf, `&gt;`...)
		default:
			buf = append(buf, c)
		}
	}
	return buf
}

// EscapeText returns text with '&', '<' and '>' replaced by character references.
func EscapeText(text string) string {
	return string(AppendText(make([]byte, 0, len(text)+8), text))
}

// EscapeAttr returns an attribute value with '&' and '"' replaced by character references.
func EscapeAttr(value string) string {
	return string(AppendAttr(make([]byte, 0, len(value)+8), value))
}
