package log

import (
	"encoding/json"
	"time"
)

// Entry is one log event prior to rendering. It is immutable once constructed.
type Entry struct {
	timestamp      time.Time
	message        string
	level          Level
	category       Category
	customCategory string
}

// NewEntry creates an entry stamped with the current time
func NewEntry(message string, level Level, category Category, customCategory string) Entry {
	return NewEntryAt(time.Now(), message, level, category, customCategory)
}

// NewEntryAt creates an entry with an explicit timestamp
func NewEntryAt(ts time.Time, message string, level Level, category Category, customCategory string) Entry {
	return Entry{
		timestamp:      ts,
		message:        message,
		level:          level,
		category:       category,
		customCategory: customCategory,
	}
}

// Timestamp returns the creation instant
func (e Entry) Timestamp() time.Time { return e.timestamp }

// Message returns the log message
func (e Entry) Message() string { return e.message }

// Level returns the severity
func (e Entry) Level() Level { return e.level }

// Category returns the predefined category
func (e Entry) Category() Category { return e.category }

// CustomCategory returns the free-form category, empty when unset
func (e Entry) CustomCategory() string { return e.customCategory }

// CategoryLabel returns the category name, or the custom category when the
// category is CategoryNone
func (e Entry) CategoryLabel() string {
	if e.category != CategoryNone {
		return e.category.String()
	}
	return e.customCategory
}

// entryJSON is the wire shape of an entry in JSON output
type entryJSON struct {
	Timestamp      time.Time `json:"timestamp"`
	Message        string    `json:"message"`
	Level          Level     `json:"level"`
	Category       Category  `json:"category"`
	CustomCategory string    `json:"customCategory"`
}

// MarshalJSON encodes level and category by name
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Timestamp:      e.timestamp,
		Message:        e.message,
		Level:          e.level,
		Category:       e.category,
		CustomCategory: e.customCategory,
	})
}

// UnmarshalJSON decodes the form produced by MarshalJSON
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = NewEntryAt(w.Timestamp, w.Message, w.Level, w.Category, w.CustomCategory)
	return nil
}
