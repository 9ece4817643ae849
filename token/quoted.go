package token

import (
	"bytes"
	"strings"
)

// Quote returns v as a double quoted string. Only backslash and double quote
// are escaped; every other character, tabs and newlines included, is written
// as is.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes a quoted token, with or without its surrounding quotes.
//
// \\ and \" decode to the escaped character and \n, \t, \r to the
// corresponding control character. Any other backslash sequence is kept
// verbatim, so unescaped Windows paths survive.
func Unquote(d []byte) string {
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		d = d[1 : len(d)-1]
	}
	if bytes.IndexByte(d, '\\') < 0 {
		return string(d)
	}
	var b strings.Builder
	b.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i == len(d)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch e := d[i]; e {
		case '\\', '"':
			b.WriteByte(e)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}
	return b.String()
}
