package domain

// MaxLogEntries is the retention cap for a single parse's log trail.
const MaxLogEntries = 100

// Log severity levels.
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
)

// ParseLog is one diagnostic event recorded during extraction. Field identifies
// the subject of the event (e.g. "product_name", "nutrition.salt", "extra.産地").
type ParseLog struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// LogBuffer accumulates parse logs in append order, retaining at most
// MaxLogEntries entries. Appends past the cap are dropped silently.
type LogBuffer struct {
	entries []ParseLog
}

// NewLogBuffer creates an empty log buffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Info appends an info-level entry.
func (b *LogBuffer) Info(message, field string) {
	b.append(ParseLog{Level: LogLevelInfo, Message: message, Field: field})
}

// Warning appends a warning-level entry.
func (b *LogBuffer) Warning(message, field string) {
	b.append(ParseLog{Level: LogLevelWarning, Message: message, Field: field})
}

func (b *LogBuffer) append(entry ParseLog) {
	if len(b.entries) >= MaxLogEntries {
		return
	}
	b.entries = append(b.entries, entry)
}

// Entries returns the accumulated entries in append order.
func (b *LogBuffer) Entries() []ParseLog {
	if b.entries == nil {
		return []ParseLog{}
	}
	return b.entries
}

// Len returns the number of retained entries.
func (b *LogBuffer) Len() int {
	return len(b.entries)
}
