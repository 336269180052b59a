package notification

import (
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one transient user-visible message. Notices live only in memory;
// everything important is also in the log.
type Notice struct {
	Id        uuid.UUID
	Level     Level
	Message   string
	CreatedAt time.Time
}
