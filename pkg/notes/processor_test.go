package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/notecal/notecal/internal/config"
	"github.com/notecal/notecal/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProcessorTest(t *testing.T) (*Processor, *CreatorStub, *StoreStub, *RepositoryStub) {
	creator := NewCreatorStub()
	store := NewStoreStub()
	repo := NewRepositoryStub()
	processor := NewProcessor(creator, store, repo, event_bus.NewEventBus(), config.Calendar{
		Id:       "primary",
		Timezone: "Europe/Warsaw",
	})
	return processor, creator, store, repo
}

func TestProcessNote_NonMatchingLinesUnchanged(t *testing.T) {
	processor, creator, _, _ := setupProcessorTest(t)

	text := "# Daily note\n\nBuy milk\nCall mom 1234\n"
	updated, changed := processor.ProcessNote(context.Background(), "daily.md", text)

	assert.False(t, changed)
	assert.Equal(t, text, updated)
	assert.Empty(t, creator.Requests())
}

func TestProcessNote_MatchedLineGetsMarker(t *testing.T) {
	processor, creator, _, repo := setupProcessorTest(t)

	updated, changed := processor.ProcessNote(context.Background(), "daily.md",
		"Team Sync 202602011000:202602011030 #event")

	assert.True(t, changed)
	assert.Equal(t, "Team Sync 202602011000:202602011030 #event ✔", updated)

	requests := creator.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "Team Sync", requests[0].Summary)
	assert.Equal(t, "2026-02-01T10:00:00", requests[0].Start)
	assert.Equal(t, "2026-02-01T10:30:00", requests[0].End)
	assert.Equal(t, "Europe/Warsaw", requests[0].TimeZone)

	logged := repo.All()
	require.Len(t, logged, 1)
	assert.Equal(t, "daily.md", logged[0].NotePath)
	assert.Equal(t, "gevent-1", logged[0].GoogleEventId)
}

func TestProcessNote_MarkedLineNeverReprocessed(t *testing.T) {
	processor, creator, _, _ := setupProcessorTest(t)

	text := "Team Sync 202602011000:202602011030 #event ✔"
	updated, changed := processor.ProcessNote(context.Background(), "daily.md", text)

	assert.False(t, changed)
	assert.Equal(t, text, updated)
	assert.Empty(t, creator.Requests())
}

func TestProcessNote_PartialFailure(t *testing.T) {
	processor, creator, _, _ := setupProcessorTest(t)
	creator.FailFor("Dentist", errors.New("backend says no"))

	text := "Team Sync 202602011000:202602011030 #event\n" +
		"Dentist 202602021500:202602021600 #event\n" +
		"Retro 202602031400:202602031500 #event"

	updated, changed := processor.ProcessNote(context.Background(), "daily.md", text)

	assert.True(t, changed)
	assert.Equal(t,
		"Team Sync 202602011000:202602011030 #event ✔\n"+
			"Dentist 202602021500:202602021600 #event\n"+
			"Retro 202602031400:202602031500 #event ✔",
		updated)
	// The failed line stays unmarked while later lines were still processed.
	assert.Len(t, creator.Requests(), 2)
}

func TestProcessNote_Idempotent(t *testing.T) {
	processor, creator, _, _ := setupProcessorTest(t)

	text := "Before\nTeam Sync 202602011000:202602011030 #event\nAfter"
	first, changed := processor.ProcessNote(context.Background(), "daily.md", text)
	require.True(t, changed)

	second, changed := processor.ProcessNote(context.Background(), "daily.md", first)
	assert.False(t, changed)
	assert.Equal(t, first, second)
	assert.Len(t, creator.Requests(), 1)
}

func TestProcessNote_TitlelessLineUsesPlaceholder(t *testing.T) {
	processor, creator, _, _ := setupProcessorTest(t)

	_, changed := processor.ProcessNote(context.Background(), "daily.md",
		"202602011000:202602011030 #event")

	assert.True(t, changed)
	requests := creator.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "Event", requests[0].Summary)
}

func TestProcessNote_PreservesWindowsLineEndings(t *testing.T) {
	processor, _, _, _ := setupProcessorTest(t)

	updated, changed := processor.ProcessNote(context.Background(), "daily.md",
		"Team Sync 202602011000:202602011030 #event\r\nBuy milk\r\n")

	assert.True(t, changed)
	assert.Equal(t, "Team Sync 202602011000:202602011030 #event ✔\r\nBuy milk\r\n", updated)
}

func TestProcessFile_WritesBackOnlyOnChange(t *testing.T) {
	processor, _, store, _ := setupProcessorTest(t)
	store.Put("daily.md", "Team Sync 202602011000:202602011030 #event")

	err := processor.ProcessFile(context.Background(), "daily.md")
	require.NoError(t, err)
	assert.Equal(t, 1, store.WriteCount())
	assert.Equal(t, "Team Sync 202602011000:202602011030 #event ✔", store.Content("daily.md"))

	// A second pass over the marked note performs no write.
	err = processor.ProcessFile(context.Background(), "daily.md")
	require.NoError(t, err)
	assert.Equal(t, 1, store.WriteCount())
}

func TestProcessFile_IgnoresNonMarkdown(t *testing.T) {
	processor, creator, store, _ := setupProcessorTest(t)
	store.Put("daily.txt", "Team Sync 202602011000:202602011030 #event")

	err := processor.ProcessFile(context.Background(), "daily.txt")
	require.NoError(t, err)
	assert.Empty(t, creator.Requests())
	assert.Equal(t, 0, store.WriteCount())
}

func TestProcessFile_AllLinesFail_NoWrite(t *testing.T) {
	processor, creator, store, _ := setupProcessorTest(t)
	creator.FailFor("Team Sync", errors.New("backend says no"))
	store.Put("daily.md", "Team Sync 202602011000:202602011030 #event")

	err := processor.ProcessFile(context.Background(), "daily.md")
	require.NoError(t, err)
	assert.Equal(t, 0, store.WriteCount())
}
