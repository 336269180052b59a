package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/notecal/notecal/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CalendarEventCreatedNotice(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(bus)

	err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.CalendarEventCreated,
		event_bus.CalendarEventCreatedData{
			NotePath:  "daily.md",
			Summary:   "Team Sync",
			StartTime: "2026-02-01T10:00:00",
			EndTime:   "2026-02-01T10:30:00",
		}))
	require.NoError(t, err)

	notices := service.Recent(10)
	require.Len(t, notices, 1)
	assert.Equal(t, LevelInfo, notices[0].Level)
	assert.Contains(t, notices[0].Message, "Team Sync")
}

func TestService_CalendarEventFailedNotice(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(bus)

	err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.CalendarEventFailed,
		event_bus.CalendarEventFailedData{
			NotePath: "daily.md",
			Line:     "Team Sync 202602011000:202602011030 #event",
			Reason:   "backend says no",
		}))
	require.NoError(t, err)

	notices := service.Recent(10)
	require.Len(t, notices, 1)
	assert.Equal(t, LevelError, notices[0].Level)
	assert.Contains(t, notices[0].Message, "backend says no")
}

func TestService_NoteProcessedNoticeOnlyOnPartialFailure(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(event_bus.NewEvent(ctx, event_bus.NoteProcessed,
		event_bus.NoteProcessedData{NotePath: "clean.md", Matched: 2, Created: 2})))
	assert.Empty(t, service.Recent(10), "a fully successful pass produces no notice")

	require.NoError(t, bus.Publish(event_bus.NewEvent(ctx, event_bus.NoteProcessed,
		event_bus.NoteProcessedData{NotePath: "flaky.md", Matched: 3, Created: 1})))

	notices := service.Recent(10)
	require.Len(t, notices, 1)
	assert.Equal(t, LevelWarning, notices[0].Level)
	assert.Contains(t, notices[0].Message, "flaky.md")
}

func TestService_AuthorizationRequiredNotice(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(bus)

	err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.AuthorizationRequired,
		event_bus.AuthorizationRequiredData{AuthorizationUrl: "https://accounts.example/auth"}))
	require.NoError(t, err)

	notices := service.Recent(10)
	require.Len(t, notices, 1)
	assert.Equal(t, LevelWarning, notices[0].Level)
	assert.Contains(t, notices[0].Message, "https://accounts.example/auth")
}

func TestService_RecentNewestFirstWithLimit(t *testing.T) {
	service := NewService(event_bus.NewEventBus())

	service.Add(LevelInfo, "first")
	service.Add(LevelInfo, "second")
	service.Add(LevelInfo, "third")

	notices := service.Recent(2)
	require.Len(t, notices, 2)
	assert.Equal(t, "third", notices[0].Message)
	assert.Equal(t, "second", notices[1].Message)
}

func TestService_RingDropsOldestNotices(t *testing.T) {
	service := NewService(event_bus.NewEventBus())

	for i := 0; i < maxNotices+10; i++ {
		service.Add(LevelInfo, fmt.Sprintf("notice %d", i))
	}

	notices := service.Recent(maxNotices * 2)
	require.Len(t, notices, maxNotices)
	assert.Equal(t, fmt.Sprintf("notice %d", maxNotices+9), notices[0].Message)
}
