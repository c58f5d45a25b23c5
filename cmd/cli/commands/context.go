package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/internal/config"
	"github.com/campuslife/club-awards/pkg/db"
)

// Migrator applies pending schema migrations
type Migrator interface {
	RunMigrations(ctx context.Context) error
}

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Migrator Migrator
	Logger   *zap.Logger
	Ctx      context.Context

	// Now supplies the reference time for eligibility windows and
	// recorded timestamps; overridable in tests
	Now func() time.Time
}
