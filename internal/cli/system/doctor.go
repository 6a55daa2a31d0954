package system

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/jitsuna/internal/backup"
	"github.com/julianstephens/jitsuna/internal/cli"
	"github.com/julianstephens/jitsuna/internal/constants"
	"github.com/julianstephens/jitsuna/internal/migration"
)

type DoctorCmd struct{}

// dbHandle is implemented by both storage backends.
type dbHandle interface {
	GetDB() *sql.DB
}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Level consistency", run: checkLevels, needsDB: true},
	{name: "Habit limit", run: checkHabitLimit, needsDB: true},
	{name: "Completion dates", run: checkCompletionDates, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Clock", run: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("%s %s: SKIPPED (database not reachable)\n", ctx.Mark(cli.StatusSkip), c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("%s %s: OK\n", ctx.Mark(cli.StatusOK), c.name)
		case c.warnOnly:
			ctx.Printf("%s %s: WARNING\n", ctx.Mark(cli.StatusWarn), c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("%s %s: FAIL\n", ctx.Mark(cli.StatusFail), c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	// An out-of-date schema is reported by the schema check.
	if err := ctx.Store.Load(ctx.Context()); err != nil && !errors.Is(err, migration.ErrSchemaMismatch) {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return ctx.Store.Ping(ctx.Context())
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion(ctx.Context())
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, latest)
	}
	if current < latest {
		return fmt.Errorf("database schema version %d is behind %d, run '%s migrate'", current, latest, constants.AppName)
	}
	return nil
}

func countRows(ctx *cli.Context, query string) (int, error) {
	h, ok := ctx.Store.(dbHandle)
	if !ok || h.GetDB() == nil {
		return 0, fmt.Errorf("database connection is not available")
	}
	var n int
	if err := h.GetDB().QueryRowContext(ctx.Context(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("integrity query failed: %w", err)
	}
	return n, nil
}

func checkLevels(ctx *cli.Context) error {
	n, err := countRows(ctx, fmt.Sprintf(
		"SELECT COUNT(*) FROM users WHERE xp < 0 OR level <> xp / %d + 1", constants.XPPerLevel))
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%d user(s) have a level that does not match their XP", n)
	}
	return nil
}

func checkHabitLimit(ctx *cli.Context) error {
	n, err := countRows(ctx, fmt.Sprintf(
		"SELECT COUNT(*) FROM (SELECT user_id FROM habits GROUP BY user_id HAVING COUNT(*) > %d) AS over_limit",
		constants.MaxHabitsPerUser))
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%d user(s) own more than %d habits", n, constants.MaxHabitsPerUser)
	}
	return nil
}

func checkCompletionDates(ctx *cli.Context) error {
	h, ok := ctx.Store.(dbHandle)
	if !ok || h.GetDB() == nil {
		return fmt.Errorf("database connection is not available")
	}

	rows, err := h.GetDB().QueryContext(ctx.Context(),
		"SELECT id, last_completed_date FROM habits WHERE last_completed_date IS NOT NULL")
	if err != nil {
		return fmt.Errorf("integrity query failed: %w", err)
	}
	defer rows.Close()

	bad := 0
	for rows.Next() {
		var id, day string
		if err := rows.Scan(&id, &day); err != nil {
			return err
		}
		if _, err := time.Parse(constants.DateFormat, day); err != nil {
			bad++
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if bad > 0 {
		return fmt.Errorf("%d habit(s) have a malformed completion date", bad)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path, ok := ctx.SQLitePath()
	if !ok {
		return nil
	}
	backups, err := backup.NewManager(path).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run '%s backup create'", constants.AppName)
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClock(_ *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %s", now.Format(time.RFC3339))
	}
	if _, err := time.Parse(constants.DateFormat, now.Format(constants.DateFormat)); err != nil {
		return fmt.Errorf("date formatting failed: %w", err)
	}
	return nil
}
