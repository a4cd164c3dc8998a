package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourname/befree/internal"
)

const (
	demoEmail    = "demo@befree.app"
	demoName     = "Demo User"
	demoPassword = "password123"
)

// Sanitize strips the password hash before user data leaves the store
// layer. Pure projection, the input is not modified.
func Sanitize(u *internal.User) *internal.User {
	if u == nil {
		return nil
	}
	safe := CloneUser(*u)
	safe.PasswordHash = ""
	return &safe
}

func (r *FileRepositories) FindByEmail(email string) (*internal.User, error) {
	if email == "" {
		return nil, nil
	}
	normalized := normalizeEmail(email)

	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].Email == normalized {
			return &doc.Users[i], nil
		}
	}
	return nil, nil
}

func (r *FileRepositories) FindByID(id string) (*internal.User, error) {
	if id == "" {
		return nil, nil
	}
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i], nil
		}
	}
	return nil, nil
}

func (r *FileRepositories) Create(input internal.NewUser) (*internal.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, internal.ErrInvalidPayload
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), r.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := internal.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = r.store.Update(func(doc *Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == record.Email {
				return internal.ErrEmailInUse
			}
		}
		doc.Users = append(doc.Users, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Runs after the user commit on purpose: a failure here leaves a
	// valid user whose milestones get seeded on first listing instead.
	if _, err := r.EnsureDefaultMilestones(record.ID); err != nil {
		r.logger.Errorf("users: seeding default milestones for %s failed: %v", record.ID, err)
	}

	return Sanitize(&record), nil
}

// Authenticate resolves login credentials to a sanitized user. An
// unknown email and a wrong password are indistinguishable to callers.
func (r *FileRepositories) Authenticate(email, password string) (*internal.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, internal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}
	return Sanitize(user), nil
}

func (r *FileRepositories) UpdateProfile(id string, updates internal.ProfileUpdates) (*internal.User, error) {
	if id == "" {
		return nil, nil
	}

	var result *internal.User
	err := r.store.Update(func(doc *Document) error {
		user := findUser(doc, id)
		if user == nil {
			return nil
		}

		if updates.Email != nil {
			email := normalizeEmail(*updates.Email)
			if email != "" && email != user.Email {
				for i := range doc.Users {
					if doc.Users[i].Email == email && doc.Users[i].ID != id {
						return internal.ErrEmailInUse
					}
				}
				user.Email = email
			}
		}

		if updates.Name != nil {
			if name := strings.TrimSpace(*updates.Name); name != "" {
				user.Name = name
			}
		}

		if updates.AddictionType != nil {
			if *updates.AddictionType == "" {
				user.AddictionType = nil
			} else {
				v := *updates.AddictionType
				user.AddictionType = &v
			}
		}

		if updates.QuitDate != nil {
			// Empty clears the date; an unparsable value also clears
			// it rather than erroring.
			if t, ok := parseTimestamp(*updates.QuitDate); ok {
				utc := t.UTC()
				user.QuitDate = &utc
			} else {
				user.QuitDate = nil
			}
		}

		user.UpdatedAt = time.Now().UTC()
		result = Sanitize(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *FileRepositories) UpdatePassword(id, currentPassword, newPassword string) (bool, error) {
	if id == "" || currentPassword == "" || newPassword == "" {
		return false, nil
	}

	changed := false
	err := r.store.Update(func(doc *Document) error {
		user := findUser(doc, id)
		if user == nil {
			return nil
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return internal.ErrInvalidCredentials
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), r.bcryptCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
		user.UpdatedAt = time.Now().UTC()
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// SeedDemo makes sure the demo account exists. Idempotent: an existing
// demo user is returned as-is.
func (r *FileRepositories) SeedDemo() (*internal.User, error) {
	existing, err := r.FindByEmail(demoEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return Sanitize(existing), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), r.bcryptCost)
	if err != nil {
		return nil, err
	}

	addiction := "smoking"
	now := time.Now().UTC()
	demo := internal.User{
		ID:            uuid.NewString(),
		Name:          demoName,
		Email:         demoEmail,
		PasswordHash:  string(hash),
		AddictionType: &addiction,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = r.store.Update(func(doc *Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == demoEmail {
				demo = CloneUser(doc.Users[i])
				return nil
			}
		}
		doc.Users = append(doc.Users, demo)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := r.EnsureDefaultMilestones(demo.ID); err != nil {
		r.logger.Errorf("users: seeding demo milestones failed: %v", err)
	}

	return Sanitize(&demo), nil
}

func findUser(doc *Document, id string) *internal.User {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i]
		}
	}
	return nil
}
