package internal

import "time"

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"` // normalized: trimmed + lowercase
	PasswordHash  string     `json:"passwordHash,omitempty"`
	AddictionType *string    `json:"addictionType"`
	QuitDate      *time.Time `json:"quitDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Log struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Note          string    `json:"note"`
	Mood          *string   `json:"mood"`
	CravingLevel  *int      `json:"cravingLevel"` // 0–5 scale
	Triggers      []string  `json:"triggers"`
	CopingActions []string  `json:"copingActions"`
	Gratitude     string    `json:"gratitude"`
	Slip          bool      `json:"slip"`
	Tags          []string  `json:"tags"`
	At            time.Time `json:"at"` // event time, defaults to creation time
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Milestone struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	TargetDays   int        `json:"targetDays"`
	Achieved     bool       `json:"achieved"`
	DateAchieved *time.Time `json:"dateAchieved"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewUser is the signup input accepted by the user repository.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdates carries a partial profile update. Nil pointers mean
// "field absent"; pointers to empty strings clear the nullable fields.
type ProfileUpdates struct {
	Name          *string
	Email         *string
	AddictionType *string
	QuitDate      *string
}

// LogPayload is the untrusted log-creation input. All normalization
// (clamping, trimming, list limits, timestamp fallback) happens in the
// repository, not in the route layer.
type LogPayload struct {
	Note          string   `json:"note"`
	Mood          *string  `json:"mood"`
	CravingLevel  *float64 `json:"cravingLevel"`
	Triggers      []string `json:"triggers"`
	CopingActions []string `json:"copingActions"`
	Gratitude     string   `json:"gratitude"`
	Slip          bool     `json:"slip"`
	Tags          []string `json:"tags"`
	At            string   `json:"at"`
}

// MilestoneUpdates carries a partial milestone update; unrecognized or
// invalid values are ignored rather than rejected.
type MilestoneUpdates struct {
	Achieved     *bool    `json:"achieved"`
	DateAchieved *string  `json:"dateAchieved"`
	Title        *string  `json:"title"`
	TargetDays   *float64 `json:"targetDays"`
}
