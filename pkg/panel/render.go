package panel

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ignoredField matches binary-ish fields that are never listed or edited.
var ignoredField = regexp.MustCompile(`(?i)(photo|image|cnicfront|cnicback|avatar|logo|attachment|file)`)

const maxValueLen = 60

// Ignored reports whether a field is hidden from lists and forms.
func Ignored(name string) bool {
	return ignoredField.MatchString(name)
}

func reserved(name string) bool {
	switch name {
	case "_id", "__v", "createdAt", "updatedAt":
		return true
	}
	return false
}

// InferFields derives form fields from a sample record. Keys keep the order
// in which they appear in the document. Anything that is not a JSON object
// yields no fields.
func InferFields(sample json.RawMessage) []Field {
	doc := gjson.ParseBytes(sample)
	if !doc.IsObject() {
		return nil
	}

	var fields []Field
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if reserved(name) || Ignored(name) {
			return true
		}
		f := Field{Name: name, Label: Label(name), Kind: KindText}
		switch value.Type {
		case gjson.Number:
			f.Kind = KindNumber
		case gjson.True, gjson.False:
			f.Kind = KindSelect
			f.Options = []string{"true", "false"}
		}
		if strings.Contains(strings.ToLower(name), "date") {
			f.Kind = KindDate
			f.Options = nil
		}
		fields = append(fields, f)
		return true
	})
	return fields
}

// Resolve returns the form sections for a module: the declared sections when
// there are any, otherwise a single "Details" section inferred from the first
// record. schema may be nil for modules without a static description.
func Resolve(schema *ModuleSchema, records []json.RawMessage) []Section {
	if schema != nil && len(schema.Sections) > 0 {
		return schema.Sections
	}
	if len(records) == 0 {
		return nil
	}
	fields := InferFields(records[0])
	if len(fields) == 0 {
		return nil
	}
	return []Section{{Title: "Details", Fields: fields}}
}

// Label turns a camelCase or snake_case key into a human label:
// "dateOfBirth" becomes "Date Of Birth".
func Label(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r)
		case r == '_':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	s := strings.Join(strings.Fields(b.String()), " ")
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// FormatValue renders a JSON value for display. Missing and null values are
// "-"; objects and arrays are compact JSON cut at 60 characters.
func FormatValue(v gjson.Result) string {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return "-"
	case v.IsObject() || v.IsArray():
		text := compact(v.Raw)
		if utf8.RuneCountInString(text) > maxValueLen {
			return string([]rune(text)[:maxValueLen]) + "..."
		}
		return text
	case v.Type == gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

func compact(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}

// field looks up a top-level key without interpreting it as a gjson path.
func field(row json.RawMessage, name string) gjson.Result {
	var out gjson.Result
	gjson.ParseBytes(row).ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			out = value
			return false
		}
		return true
	})
	return out
}

// DisplayKeys lists the keys of row that may be shown, in document order.
func DisplayKeys(row json.RawMessage) []string {
	doc := gjson.ParseBytes(row)
	if !doc.IsObject() {
		return nil
	}
	var keys []string
	doc.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if !reserved(name) && !Ignored(name) {
			keys = append(keys, name)
		}
		return true
	})
	return keys
}

// RecordID returns "_id", falling back to "id".
func RecordID(row json.RawMessage) string {
	if id := field(row, "_id").String(); id != "" {
		return id
	}
	return field(row, "id").String()
}

// Primary is the row title.
func Primary(list ListConfig, row json.RawMessage) string {
	if list.Title != "" {
		if v := field(row, list.Title); v.Exists() {
			return FormatValue(v)
		}
	}
	keys := DisplayKeys(row)
	if len(keys) == 0 {
		return "Record"
	}
	return FormatValue(field(row, keys[0]))
}

// Secondary is the row subtitle, "" when there is nothing to show.
func Secondary(list ListConfig, row json.RawMessage) string {
	if list.Subtitle != "" {
		if v := field(row, list.Subtitle); v.Exists() {
			return FormatValue(v)
		}
	}
	keys := DisplayKeys(row)
	if len(keys) < 2 {
		return ""
	}
	return FormatValue(field(row, keys[1]))
}

// Meta returns the small detail values shown beside a row. Configured meta
// keys skip missing and null values; otherwise the third and fourth display
// keys are used.
func Meta(list ListConfig, row json.RawMessage) []string {
	var out []string
	if len(list.Meta) > 0 {
		for _, key := range list.Meta {
			v := field(row, key)
			if !v.Exists() || v.Type == gjson.Null {
				continue
			}
			out = append(out, FormatValue(v))
		}
		return out
	}
	keys := DisplayKeys(row)
	if len(keys) <= 2 {
		return nil
	}
	keys = keys[2:min(len(keys), 4)]
	for _, key := range keys {
		out = append(out, FormatValue(field(row, key)))
	}
	return out
}

// htmlEscapes undoes the escaping Go JSON encoders apply by default, so a
// term like "r&d" matches whichever server produced the row.
var htmlEscapes = strings.NewReplacer(`\u0026`, "&", `\u003c`, "<", `\u003e`, ">")

// Search keeps the records whose serialized form contains term, ignoring
// case. An empty term keeps everything.
func Search(records []json.RawMessage, term string) []json.RawMessage {
	if term == "" {
		return records
	}
	term = strings.ToLower(term)
	out := make([]json.RawMessage, 0, len(records))
	for _, row := range records {
		text := htmlEscapes.Replace(strings.ToLower(compact(string(row))))
		if strings.Contains(text, term) {
			out = append(out, row)
		}
	}
	return out
}

// CNICLookup matches the digits of query against the digits of each
// record's "cnic" field. A query without digits matches nothing.
func CNICLookup(records []json.RawMessage, query string) []json.RawMessage {
	q := digits(query)
	out := []json.RawMessage{}
	if q == "" {
		return out
	}
	for _, row := range records {
		if strings.Contains(digits(field(row, "cnic").String()), q) {
			out = append(out, row)
		}
	}
	return out
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
