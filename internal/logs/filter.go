package logs

import (
	"encoding/json"
	"strings"
)

// Entry is the subset of a JSON log record the CLI displays.
type Entry struct {
	Time      string `json:"ts"`
	Level     string `json:"level"`
	Message   string `json:"msg"`
	Component string `json:"component"`
	RunID     string `json:"run_id"`
	Source    string `json:"source"`
	Error     string `json:"error"`
}

// ParseLine decodes one JSON log line. Lines that are not JSON objects report false.
func ParseLine(line string) (Entry, bool) {
	var entry Entry
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return entry, false
	}
	if err := json.Unmarshal([]byte(trimmed), &entry); err != nil {
		return entry, false
	}
	return entry, true
}

// FilterRun keeps the lines whose run_id starts with runID. An empty runID
// keeps every line.
func FilterRun(lines []string, runID string) []string {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return lines
	}
	var out []string
	for _, line := range lines {
		entry, ok := ParseLine(line)
		if !ok || entry.RunID == "" {
			continue
		}
		if strings.HasPrefix(entry.RunID, runID) {
			out = append(out, line)
		}
	}
	return out
}

// Format renders an entry as a single console line. Unparseable lines are
// returned unchanged.
func Format(line string) string {
	entry, ok := ParseLine(line)
	if !ok {
		return line
	}
	var b strings.Builder
	b.WriteString(entry.Time)
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(entry.Level))
	if entry.Component != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Component)
		b.WriteByte(':')
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	if entry.Source != "" {
		b.WriteString(" source=")
		b.WriteString(entry.Source)
	}
	if entry.Error != "" {
		b.WriteString(" error=")
		b.WriteString(entry.Error)
	}
	return b.String()
}
