package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/befree/internal"
)

func floatPtr(v float64) *float64 { return &v }

func TestCreateLogClampsCravingLevel(t *testing.T) {
	r := newTestRepos(t)

	log, err := r.CreateLog("u1", internal.LogPayload{CravingLevel: floatPtr(7)})
	require.NoError(t, err)
	require.NotNil(t, log.CravingLevel)
	assert.Equal(t, 5, *log.CravingLevel)

	log, err = r.CreateLog("u1", internal.LogPayload{CravingLevel: floatPtr(-3)})
	require.NoError(t, err)
	assert.Equal(t, 0, *log.CravingLevel)

	log, err = r.CreateLog("u1", internal.LogPayload{CravingLevel: floatPtr(2.4)})
	require.NoError(t, err)
	assert.Equal(t, 2, *log.CravingLevel)

	// Clamping runs before the integer conversion, so an extreme value
	// lands on the ceiling instead of wrapping to zero.
	log, err = r.CreateLog("u1", internal.LogPayload{CravingLevel: floatPtr(1e300)})
	require.NoError(t, err)
	assert.Equal(t, 5, *log.CravingLevel)

	// Absent stays null, not zero.
	log, err = r.CreateLog("u1", internal.LogPayload{})
	require.NoError(t, err)
	assert.Nil(t, log.CravingLevel)
}

func TestCreateLogTruncatesLists(t *testing.T) {
	r := newTestRepos(t)

	triggers := make([]string, 15)
	for i := range triggers {
		triggers[i] = "trigger"
	}
	tags := []string{"a", " b ", "", "c", "d", "e", "f", "g", "h", "i"}

	log, err := r.CreateLog("u1", internal.LogPayload{
		Triggers:      triggers,
		CopingActions: []string{"  walk  ", "", "breathe"},
		Tags:          tags,
	})
	require.NoError(t, err)
	assert.Len(t, log.Triggers, 10)
	assert.Equal(t, []string{"walk", "breathe"}, log.CopingActions)
	assert.Len(t, log.Tags, 8)
	assert.Equal(t, "b", log.Tags[1])
}

func TestCreateLogTimestampFallback(t *testing.T) {
	r := newTestRepos(t)

	log, err := r.CreateLog("u1", internal.LogPayload{At: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), log.At)

	before := time.Now().UTC()
	log, err = r.CreateLog("u1", internal.LogPayload{At: "not-a-date"})
	require.NoError(t, err)
	assert.False(t, log.At.Before(before))
	assert.Equal(t, log.CreatedAt, log.At)
}

func TestCreateLogPrependsNewestFirst(t *testing.T) {
	r := newTestRepos(t)

	first, err := r.CreateLog("u1", internal.LogPayload{Note: "first"})
	require.NoError(t, err)
	second, err := r.CreateLog("u1", internal.LogPayload{Note: "second"})
	require.NoError(t, err)

	doc, err := r.store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Logs, 2)
	assert.Equal(t, second.ID, doc.Logs[0].ID)
	assert.Equal(t, first.ID, doc.Logs[1].ID)
}

func TestListLogsOrderingAndLimit(t *testing.T) {
	r := newTestRepos(t)

	for _, at := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		_, err := r.CreateLog("u1", internal.LogPayload{Note: at, At: at})
		require.NoError(t, err)
	}
	// Another user's log never shows up.
	_, err := r.CreateLog("u2", internal.LogPayload{At: "2024-06-01"})
	require.NoError(t, err)

	logs, err := r.ListLogs("u1", 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "2024-03-01", logs[0].Note)
	assert.Equal(t, "2024-02-01", logs[1].Note)
	assert.Equal(t, "2024-01-01", logs[2].Note)

	limited, err := r.ListLogs("u1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "2024-03-01", limited[0].Note)
}

func TestListLogsReturnsCopies(t *testing.T) {
	r := newTestRepos(t)
	_, err := r.CreateLog("u1", internal.LogPayload{Note: "original", Triggers: []string{"stress"}})
	require.NoError(t, err)

	logs, err := r.ListLogs("u1", 0)
	require.NoError(t, err)
	logs[0].Note = "mutated"
	logs[0].Triggers[0] = "mutated"

	fresh, err := r.ListLogs("u1", 0)
	require.NoError(t, err)
	assert.Equal(t, "original", fresh[0].Note)
	assert.Equal(t, "stress", fresh[0].Triggers[0])
}
