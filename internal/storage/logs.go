package storage

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourname/befree/internal"
)

const (
	maxListEntries = 10
	maxTagEntries  = 8
)

// ListLogs returns the user's logs sorted by event time descending,
// falling back to creation time when the event time is unset. A
// positive limit truncates the result.
func (r *FileRepositories) ListLogs(userID string, limit int) ([]internal.Log, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	logs := []internal.Log{}
	for i := range doc.Logs {
		if doc.Logs[i].UserID == userID {
			logs = append(logs, doc.Logs[i])
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return effectiveAt(logs[i]).After(effectiveAt(logs[j]))
	})

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// CreateLog normalizes the payload and prepends the new log so
// storage order matches listing order, newest first. Ownership of
// userID is the caller's responsibility.
func (r *FileRepositories) CreateLog(userID string, payload internal.LogPayload) (*internal.Log, error) {
	var created internal.Log
	err := r.store.Update(func(doc *Document) error {
		now := time.Now().UTC()
		at := now
		if t, ok := parseTimestamp(payload.At); ok {
			at = t.UTC()
		}

		log := internal.Log{
			ID:            uuid.NewString(),
			UserID:        userID,
			Note:          strings.TrimSpace(payload.Note),
			Mood:          cloneStringPtr(payload.Mood),
			Triggers:      normalizeList(payload.Triggers, maxListEntries),
			CopingActions: normalizeList(payload.CopingActions, maxListEntries),
			Gratitude:     strings.TrimSpace(payload.Gratitude),
			Slip:          payload.Slip,
			Tags:          normalizeList(payload.Tags, maxTagEntries),
			At:            at,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if payload.CravingLevel != nil {
			level := clampCraving(*payload.CravingLevel)
			log.CravingLevel = &level
		}

		doc.Logs = append([]internal.Log{log}, doc.Logs...)
		created = CloneLog(log)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func effectiveAt(l internal.Log) time.Time {
	if !l.At.IsZero() {
		return l.At
	}
	return l.CreatedAt
}
