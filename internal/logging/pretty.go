package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Markup payloads are capped so a stray page dump cannot flood the console.
const maxMarkupRunes = 500

// Pretty renders any value for display. Classification happens once, here:
// strings go through the text rule (markup stripping or JSON re-indent),
// maps and sequences through the structured rule (indented JSON with
// deterministic key order), and everything else through the default textual
// form. It never fails.
func Pretty(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = fmt.Sprintf("%T", v)
		}
	}()
	switch t := v.(type) {
	case string:
		return prettyText(t)
	case nil:
		return "<nil>"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return prettyStructured(v)
	}
	return fmt.Sprint(v)
}

// prettyText handles the string cases: markup gets stripped and capped,
// serialized JSON gets re-indented with sorted keys, anything else passes
// through untouched.
func prettyText(s string) string {
	if strings.Contains(s, "html") {
		return truncateRunes(stripTags(s), maxMarkupRunes)
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		if pretty, err := marshalIndent(decoded); err == nil {
			return pretty
		}
	}
	return s
}

// prettyStructured renders maps and sequences as indented JSON. Map keys
// come out sorted, so identical content always yields identical bytes.
// Payloads the encoder rejects are sanitized leaf by leaf and retried.
func prettyStructured(v any) string {
	if pretty, err := marshalIndent(v); err == nil {
		return pretty
	}
	if pretty, err := marshalIndent(sanitize(v)); err == nil {
		return pretty
	}
	return fmt.Sprint(v)
}

func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// sanitize rewrites a value into something the JSON encoder accepts:
// primitives pass through, map keys become strings, containers recurse,
// and opaque leaves collapse to a "TypeName(value)" placeholder. Containers
// already on the current descent path collapse too, so cyclic payloads
// degrade instead of recursing without bound.
func sanitize(v any) any {
	return sanitizeValue(v, map[uintptr]bool{})
}

func sanitizeValue(v any, path map[uintptr]bool) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		ptr := rv.Pointer()
		if path[ptr] {
			return typeName(v) + "(...)"
		}
		path[ptr] = true
		defer delete(path, ptr)
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = sanitizeValue(iter.Value().Interface(), path)
		}
		return out
	case reflect.Slice:
		ptr := rv.Pointer()
		if path[ptr] {
			return typeName(v) + "(...)"
		}
		path[ptr] = true
		defer delete(path, ptr)
		return sanitizeElems(rv, path)
	case reflect.Array:
		return sanitizeElems(rv, path)
	}
	return opaquePlaceholder(v)
}

func sanitizeElems(rv reflect.Value, path map[uintptr]bool) []any {
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, sanitizeValue(rv.Index(i).Interface(), path))
	}
	return out
}

func opaquePlaceholder(v any) string {
	return fmt.Sprintf("%s(%v)", typeName(v), v)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// stripTags reduces markup to its text content.
func stripTags(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	return doc.Text()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
