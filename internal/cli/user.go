package cli

import (
	"github.com/julianstephens/jitsuna/internal/constants"
)

type UserCmd struct {
	Register UserRegisterCmd `cmd:"" help:"Register a user (no-op if already registered)."`
	Show     UserShowCmd     `cmd:"" help:"Show a user's profile and progress."`
}

type UserRegisterCmd struct {
	UserID   int64  `arg:"" name:"user-id" help:"Chat user id."`
	Username string `help:"Display name stored on first registration."`
}

func (c *UserRegisterCmd) Run(ctx *Context) error {
	if err := ctx.Store.RegisterUser(ctx.Context(), c.UserID, c.Username); err != nil {
		return err
	}
	ctx.Printf("User %d is registered.\n", c.UserID)
	return nil
}

type UserShowCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
}

func (c *UserShowCmd) Run(ctx *Context) error {
	user, err := ctx.Store.GetUser(ctx.Context(), c.UserID)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(ctx.Context(), c.UserID)
	if err != nil {
		return err
	}

	name := user.Username
	if name == "" {
		name = "-"
	}
	ctx.Printf("User:     %d (%s)\n", user.UserID, name)
	ctx.Printf("Progress: %s\n", FormatProgress(user.Progress()))
	ctx.Printf("Habits:   %d/%d\n", len(habits), constants.MaxHabitsPerUser)
	ctx.Printf("Reminder: %s\n", FormatReminder(user.ReminderHour))
	ctx.Printf("Joined:   %s\n", user.CreatedAt.Local().Format(constants.DateFormat))
	return nil
}
