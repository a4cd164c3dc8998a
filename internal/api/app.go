package api

import (
	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/config"
	"github.com/yourname/befree/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Config() *config.Config
	Users() storage.UserRepository
	Logs() storage.LogRepository
	Milestones() storage.MilestoneRepository
	Tokens() *auth.TokenService
}

type app struct {
	logger     internal.Logger
	cfg        *config.Config
	users      storage.UserRepository
	logs       storage.LogRepository
	milestones storage.MilestoneRepository
	tokens     *auth.TokenService
}

func NewApp(cfg *config.Config, logger internal.Logger, users storage.UserRepository, logs storage.LogRepository, milestones storage.MilestoneRepository, tokens *auth.TokenService) App {
	return &app{
		logger:     logger,
		cfg:        cfg,
		users:      users,
		logs:       logs,
		milestones: milestones,
		tokens:     tokens,
	}
}

func (a *app) Logger() internal.Logger                 { return a.logger }
func (a *app) Config() *config.Config                  { return a.cfg }
func (a *app) Users() storage.UserRepository           { return a.users }
func (a *app) Logs() storage.LogRepository             { return a.logs }
func (a *app) Milestones() storage.MilestoneRepository { return a.milestones }
func (a *app) Tokens() *auth.TokenService              { return a.tokens }
