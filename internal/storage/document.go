package storage

import (
	"time"

	"github.com/yourname/befree/internal"
)

// Document is the whole on-disk database: one JSON object with exactly
// these three collections, each always present and non-nil.
type Document struct {
	Users      []internal.User      `json:"users"`
	Logs       []internal.Log       `json:"logs"`
	Milestones []internal.Milestone `json:"milestones"`
}

func NewDocument() *Document {
	return &Document{
		Users:      []internal.User{},
		Logs:       []internal.Log{},
		Milestones: []internal.Milestone{},
	}
}

// normalize guarantees the three-collection invariant after decoding a
// document that an external editor may have left with null arrays.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []internal.User{}
	}
	if d.Logs == nil {
		d.Logs = []internal.Log{}
	}
	if d.Milestones == nil {
		d.Milestones = []internal.Milestone{}
	}
}

// Clone deep-copies the document. Copies are structural and explicit so
// callers can mutate their copy without touching the store's cache.
func (d *Document) Clone() *Document {
	out := &Document{
		Users:      make([]internal.User, len(d.Users)),
		Logs:       make([]internal.Log, len(d.Logs)),
		Milestones: make([]internal.Milestone, len(d.Milestones)),
	}
	for i := range d.Users {
		out.Users[i] = CloneUser(d.Users[i])
	}
	for i := range d.Logs {
		out.Logs[i] = CloneLog(d.Logs[i])
	}
	for i := range d.Milestones {
		out.Milestones[i] = CloneMilestone(d.Milestones[i])
	}
	return out
}

func CloneUser(u internal.User) internal.User {
	u.AddictionType = cloneStringPtr(u.AddictionType)
	u.QuitDate = cloneTimePtr(u.QuitDate)
	return u
}

func CloneLog(l internal.Log) internal.Log {
	l.Mood = cloneStringPtr(l.Mood)
	l.CravingLevel = cloneIntPtr(l.CravingLevel)
	l.Triggers = cloneStrings(l.Triggers)
	l.CopingActions = cloneStrings(l.CopingActions)
	l.Tags = cloneStrings(l.Tags)
	return l
}

func CloneMilestone(m internal.Milestone) internal.Milestone {
	m.DateAchieved = cloneTimePtr(m.DateAchieved)
	return m
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
