package storage

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourname/befree/internal"
)

type defaultMilestone struct {
	title      string
	targetDays int
}

var defaultMilestones = []defaultMilestone{
	{"First 72 hours", 3},
	{"One week strong", 7},
	{"Halfway to a month", 14},
	{"One month milestone", 30},
	{"Ninety day reset", 90},
	{"Half-year hero", 180},
}

func (r *FileRepositories) ListMilestones(userID string) ([]internal.Milestone, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	milestones := []internal.Milestone{}
	for i := range doc.Milestones {
		if doc.Milestones[i].UserID == userID {
			milestones = append(milestones, doc.Milestones[i])
		}
	}
	return milestones, nil
}

// EnsureDefaultMilestones seeds the fixed default set the first time a
// user's milestones are requested. The existence check and the append
// run inside one transaction, so two concurrent calls cannot both seed.
func (r *FileRepositories) EnsureDefaultMilestones(userID string) ([]internal.Milestone, error) {
	var result []internal.Milestone
	err := r.store.Update(func(doc *Document) error {
		existing := []internal.Milestone{}
		for i := range doc.Milestones {
			if doc.Milestones[i].UserID == userID {
				existing = append(existing, CloneMilestone(doc.Milestones[i]))
			}
		}
		if len(existing) > 0 {
			result = existing
			return nil
		}

		now := time.Now().UTC()
		seeded := make([]internal.Milestone, 0, len(defaultMilestones))
		for _, def := range defaultMilestones {
			seeded = append(seeded, internal.Milestone{
				ID:         uuid.NewString(),
				UserID:     userID,
				Title:      def.title,
				TargetDays: def.targetDays,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
		doc.Milestones = append(doc.Milestones, seeded...)
		result = seeded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateMilestone applies recognized fields to the milestone owned by
// userID. A wrong id and a wrong owner both come back as nil, so the
// response does not leak which one it was.
func (r *FileRepositories) UpdateMilestone(userID, milestoneID string, updates internal.MilestoneUpdates) (*internal.Milestone, error) {
	var result *internal.Milestone
	err := r.store.Update(func(doc *Document) error {
		var milestone *internal.Milestone
		for i := range doc.Milestones {
			if doc.Milestones[i].ID == milestoneID && doc.Milestones[i].UserID == userID {
				milestone = &doc.Milestones[i]
				break
			}
		}
		if milestone == nil {
			return nil
		}

		if updates.Achieved != nil {
			milestone.Achieved = *updates.Achieved
			if !*updates.Achieved {
				milestone.DateAchieved = nil
			}
		}

		// A valid achievement date wins over achieved=false above.
		if updates.DateAchieved != nil {
			if t, ok := parseTimestamp(*updates.DateAchieved); ok {
				utc := t.UTC()
				milestone.DateAchieved = &utc
				milestone.Achieved = true
			}
		}

		if updates.Title != nil {
			if title := strings.TrimSpace(*updates.Title); title != "" {
				milestone.Title = title
			}
		}

		if updates.TargetDays != nil {
			// Floor and range-check in the float domain; a value too
			// large for int would otherwise wrap on conversion.
			if days := math.Floor(*updates.TargetDays); days > 0 && days <= math.MaxInt32 {
				milestone.TargetDays = int(days)
			}
		}

		milestone.UpdatedAt = time.Now().UTC()
		cloned := CloneMilestone(*milestone)
		result = &cloned
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
