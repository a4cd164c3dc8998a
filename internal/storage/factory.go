package storage

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/yourname/befree/internal"
)

// FileRepositories implements every repository interface on top of one
// file-backed Store, so all collections share a single write path.
type FileRepositories struct {
	store      *Store
	logger     internal.Logger
	bcryptCost int
}

func NewFileRepositories(path string, logger internal.Logger) (UserRepository, LogRepository, MilestoneRepository) {
	r := &FileRepositories{
		store:      NewStore(path, logger),
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
	return r, r, r
}

// Compile-time assertions.
var (
	_ UserRepository      = (*FileRepositories)(nil)
	_ LogRepository       = (*FileRepositories)(nil)
	_ MilestoneRepository = (*FileRepositories)(nil)
)
