package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/jitsuna/internal/backup"
	"github.com/julianstephens/jitsuna/internal/logger"
	"github.com/julianstephens/jitsuna/internal/models"
	"github.com/julianstephens/jitsuna/internal/storage"
)

// Context is handed to every command's Run method.
type Context struct {
	Store storage.Provider
	Out   io.Writer

	ctx context.Context
}

func NewContext(ctx context.Context, store storage.Provider) *Context {
	return &Context{Store: store, Out: os.Stdout, ctx: ctx}
}

// Context returns the request context, or context.Background when none was set.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Status is the outcome shown in front of a doctor check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
	StatusSkip
)

var marks = map[Status]struct {
	text  string
	color lipgloss.Color
}{
	StatusOK:   {"✓", "10"},
	StatusWarn: {"⚠", "11"},
	StatusFail: {"❌", "9"},
	StatusSkip: {"⊘", "8"},
}

// Mark renders the symbol for s, colored only when Out is a terminal.
func (c *Context) Mark(s Status) string {
	m := marks[s]
	return lipgloss.NewRenderer(c.out()).NewStyle().Foreground(m.color).Render(m.text)
}

// SQLitePath returns the database file path, or false for server backends.
func (c *Context) SQLitePath() (string, bool) {
	path := c.Store.GetConfigPath()
	if storage.IsPostgres(path) || path == "postgresql" {
		return "", false
	}
	return path, true
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path, ok := c.SQLitePath()
	if !ok {
		return
	}
	if _, err := backup.NewManager(path).Create(c.Context()); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatReminder renders an optional reminder hour as HH:00.
func FormatReminder(hour *int) string {
	if hour == nil {
		return "off"
	}
	return fmt.Sprintf("%02d:00", *hour)
}

// FormatProgress renders XP and level the way replies show them.
func FormatProgress(p models.Progress) string {
	return fmt.Sprintf("level %d (%d XP)", p.Level, p.XP)
}
