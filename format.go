// FILE: lixenwraith/simplelog/format.go
package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Formatter filters entries by level and renders them in the configured format.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	format          string
	minLevel        Level
	timestampFormat string
}

// NewFormatter creates a formatter from the format-related fields of cfg
func NewFormatter(cfg *Config) *Formatter {
	tsFormat := cfg.TimestampFormat
	if tsFormat == "" {
		tsFormat = DefaultTimestampFormat
	}
	return &Formatter{
		format:          cfg.Format,
		minLevel:        cfg.Level,
		timestampFormat: tsFormat,
	}
}

// Enabled reports whether entries at level pass the minimum level threshold
func (f *Formatter) Enabled(level Level) bool {
	return level >= f.minLevel
}

// Render returns the text for entry, or false if the entry is below the minimum level
func (f *Formatter) Render(entry Entry) (string, bool) {
	if !f.Enabled(entry.Level()) {
		return "", false
	}

	if f.format == FormatJSON {
		return f.renderJSON(entry), true
	}
	return f.renderTxt(entry), true
}

// renderTxt produces "[ts] [LEVEL] [category] message"
func (f *Formatter) renderTxt(entry Entry) string {
	var sb strings.Builder
	sb.Grow(len(entry.Message()) + 48)

	sb.WriteByte('[')
	sb.WriteString(entry.Timestamp().Format(f.timestampFormat))
	sb.WriteString("] [")
	sb.WriteString(fmt.Sprintf("%-*s", levelWidth, entry.Level().String()))
	sb.WriteString("] [")
	sb.WriteString(entry.CategoryLabel())
	sb.WriteString("] ")
	sb.WriteString(entry.Message())

	return sb.String()
}

// renderJSON produces one indented JSON object
func (f *Formatter) renderJSON(entry Entry) string {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		// Entry fields are all encodable; keep the message rather than lose it
		return fmt.Sprintf(`{"_marshal_error":%q,"message":%q}`, err.Error(), entry.Message())
	}
	return string(data)
}

// ParsedLine holds the fields recovered from a plain-text line
type ParsedLine struct {
	Timestamp      time.Time
	Level          Level
	Category       Category
	CustomCategory string
	Message        string
}

// ParseLine parses text produced by the plain-text renderer using the default
// timestamp layout. A custom category spelled exactly like a predefined category
// name (upper case) is reported as that category.
func ParseLine(text string) (ParsedLine, error) {
	return ParseLineWithFormat(text, DefaultTimestampFormat)
}

// ParseLineWithFormat parses a plain-text line rendered with timestampFormat
func ParseLineWithFormat(text, timestampFormat string) (ParsedLine, error) {
	var p ParsedLine

	rest, tsStr, err := cutBracket(text)
	if err != nil {
		return p, fmtErrorf("malformed timestamp field: %w", err)
	}
	ts, err := time.ParseInLocation(timestampFormat, tsStr, time.Local)
	if err != nil {
		return p, fmtErrorf("invalid timestamp '%s': %w", tsStr, err)
	}
	p.Timestamp = ts

	rest, lvlStr, err := cutBracket(rest)
	if err != nil {
		return p, fmtErrorf("malformed level field: %w", err)
	}
	if p.Level, err = ParseLevel(lvlStr); err != nil {
		return p, err
	}

	rest, catStr, err := cutBracket(rest)
	if err != nil {
		return p, fmtErrorf("malformed category field: %w", err)
	}
	// Predefined names are always rendered upper case; anything else is custom
	if cat, ok := exactCategory(catStr); ok && cat != CategoryNone {
		p.Category = cat
	} else {
		p.CustomCategory = catStr
	}

	p.Message = rest
	return p, nil
}

// cutBracket splits "[field] rest" into rest and field
func cutBracket(s string) (rest, field string, err error) {
	if !strings.HasPrefix(s, "[") {
		return "", "", errors.New("missing '['")
	}
	end := strings.Index(s, "]")
	if end < 0 {
		return "", "", errors.New("missing ']'")
	}
	field = s[1:end]
	rest = strings.TrimPrefix(s[end+1:], " ")
	return rest, field, nil
}

// ParseJSON decodes one entry rendered in JSON format
func ParseJSON(data []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmtErrorf("invalid JSON entry: %w", err)
	}
	return e, nil
}

// errorMessage renders err followed by the messages of its wrapped causes
func errorMessage(err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%T: %v", err, err))

	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		sb.WriteString("\n  caused by ")
		sb.WriteString(fmt.Sprintf("%T: %v", cause, cause))
	}
	return sb.String()
}

// spewConfig is a compact dumper for log-friendly output of arbitrary values
var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// valueMessage converts any value to a log message.
// Types without a natural string form are dumped with go-spew.
func valueMessage(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "nil"
	case error:
		return errorMessage(val)
	case fmt.Stringer:
		return val.String()
	case []byte:
		return string(val)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(val)
	default:
		var b bytes.Buffer
		spewConfig.Fdump(&b, val)
		return string(bytes.TrimSpace(b.Bytes()))
	}
}
