package event_bus

const (
	// CalendarEventCreated is published after a note line was turned into a
	// Google Calendar event and marked as processed.
	CalendarEventCreated EventType = "calendar.event.created"
	// CalendarEventFailed is published when event creation for a matched line
	// failed; the line stays unmarked and will be retried on the next scan.
	CalendarEventFailed EventType = "calendar.event.failed"
	// NoteProcessed is published after a full pass over one note file.
	NoteProcessed EventType = "note.processed"
	// AuthorizationRequired is published when a scan is blocked waiting for
	// the user to complete the Google authorization flow.
	AuthorizationRequired EventType = "google.authorization.required"
)

type CalendarEventCreatedData struct {
	NotePath      string
	Summary       string
	StartTime     string
	EndTime       string
	GoogleEventId string
}

type CalendarEventFailedData struct {
	NotePath string
	Line     string
	Reason   string
}

type NoteProcessedData struct {
	NotePath string
	Matched  int
	Created  int
}

type AuthorizationRequiredData struct {
	AuthorizationUrl string
}
