package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so struct
// tags decide field names; object keys become kebab-case keywords
// ("persistedValue" => :persisted-value, "_hints" => :hints).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	e := ednWriter{buf: &buf, pretty: pretty}
	e.value(x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednWriter struct {
	buf    *bytes.Buffer
	pretty bool
}

func (e ednWriter) value(v any, level int) {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("nil")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case string:
		e.buf.WriteString(strconv.Quote(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case []any:
		e.seq('[', ']', len(t), level, func(i int) { e.value(t[i], level+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return Keyword(keys[i]) < Keyword(keys[j]) })
		e.seq('{', '}', len(keys), level, func(i int) {
			e.buf.WriteString(Keyword(keys[i]))
			e.buf.WriteByte(' ')
			e.value(t[keys[i]], level+1)
		})
	default:
		e.buf.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (e ednWriter) seq(open, close byte, n, level int, item func(int)) {
	e.buf.WriteByte(open)
	for i := 0; i < n; i++ {
		if e.pretty {
			e.buf.WriteByte('\n')
			e.buf.WriteString(strings.Repeat("  ", level+1))
		} else if i > 0 {
			e.buf.WriteByte(' ')
		}
		item(i)
	}
	if e.pretty && n > 0 {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat("  ", level))
	}
	e.buf.WriteByte(close)
}

// Keyword converts a JSON field name to an EDN keyword.
func Keyword(s string) string {
	s = strings.TrimLeft(strings.TrimSpace(s), "_")
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range s {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
