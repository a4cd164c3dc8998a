package storage

import "github.com/yourname/befree/internal"

// Not-found is a nil entity with a nil error across every repository;
// only invariant violations and I/O failures surface as errors.

type UserRepository interface {
	FindByEmail(email string) (*internal.User, error)
	FindByID(id string) (*internal.User, error)
	Create(input internal.NewUser) (*internal.User, error)
	Authenticate(email, password string) (*internal.User, error)
	UpdateProfile(id string, updates internal.ProfileUpdates) (*internal.User, error)
	UpdatePassword(id, currentPassword, newPassword string) (bool, error)
	SeedDemo() (*internal.User, error)
}

type LogRepository interface {
	ListLogs(userID string, limit int) ([]internal.Log, error)
	CreateLog(userID string, payload internal.LogPayload) (*internal.Log, error)
}

type MilestoneRepository interface {
	ListMilestones(userID string) ([]internal.Milestone, error)
	EnsureDefaultMilestones(userID string) ([]internal.Milestone, error)
	UpdateMilestone(userID, milestoneID string, updates internal.MilestoneUpdates) (*internal.Milestone, error)
}
