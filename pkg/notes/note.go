package notes

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// CompletionMarker is appended to a note line once its calendar event was
// created. A marked line is never reprocessed, which is what makes scanning
// idempotent without any external ledger.
const CompletionMarker = "✔"

// defaultTitle is used when an event line has no text before the timestamps.
const defaultTitle = "Event"

// An event line is `<title> <12-digit start>:<12-digit end> #event`.
var eventLineRe = regexp.MustCompile(`^(.*?)\s*(\d{12}):(\d{12})\s*#event$`)

// EventLine is one matched note line, never persisted.
type EventLine struct {
	RawLine  string
	Title    string
	StartRaw string
	EndRaw   string
}

// ParseEventLine matches one note line against the event-line pattern.
// The title is trimmed and falls back to "Event" when empty.
func ParseEventLine(line string) (EventLine, bool) {
	m := eventLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return EventLine{}, false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		title = defaultTitle
	}
	return EventLine{
		RawLine:  line,
		Title:    title,
		StartRaw: m[2],
		EndRaw:   m[3],
	}, true
}

// IsProcessed reports whether the line already carries the completion marker.
func IsProcessed(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), CompletionMarker)
}

// ToISO converts a YYYYMMDDHHmm timestamp to a local ISO-8601 datetime by
// positional slicing. There is no calendar validation: an impossible date is
// passed through uninterpreted and rejected by the calendar API.
func ToISO(raw string) string {
	return fmt.Sprintf("%s-%s-%sT%s:%s:00", raw[0:4], raw[4:6], raw[6:8], raw[8:10], raw[10:12])
}

// EventRequest is the payload handed to the calendar client for one matched
// line. Start and End are local ISO-8601 datetimes qualified by TimeZone.
type EventRequest struct {
	Summary  string
	Start    string
	End      string
	TimeZone string
}

// EventCreator creates a single calendar event and returns its provider id.
type EventCreator interface {
	CreateEvent(ctx context.Context, req EventRequest) (string, error)
}
