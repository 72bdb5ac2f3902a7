package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/internal/config"
	"github.com/okulnobet/duty-roster/pkg/clients/sheetsclient"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/core/services"
	"github.com/okulnobet/duty-roster/pkg/db"
	"github.com/okulnobet/duty-roster/pkg/drafts"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client // nil unless a Google feature is configured
	Database     db.Database
	Teachers     services.TeacherSource
	TeacherSink  services.TeacherSink // nil unless teachers are stored in the database
	Drafts       *drafts.Store
	Closures     []roster.ClosureRule
	Logger       *zap.Logger
	Ctx          context.Context
	Now          func() time.Time
}

// ClosureRules converts configured closures to roster rules
func ClosureRules(closures []config.Closure) []roster.ClosureRule {
	rules := make([]roster.ClosureRule, len(closures))
	for i, c := range closures {
		rules[i] = roster.ClosureRule{RRule: c.RRule, Reason: c.Reason}
	}
	return rules
}
