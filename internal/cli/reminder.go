package cli

type ReminderCmd struct {
	Set   ReminderSetCmd   `cmd:"" help:"Set the daily reminder hour (0-23)."`
	Show  ReminderShowCmd  `cmd:"" help:"Show the reminder hour."`
	Clear ReminderClearCmd `cmd:"" help:"Turn the reminder off."`
	Due   ReminderDueCmd   `cmd:"" help:"List users whose reminder is due at an hour."`
}

type ReminderSetCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
	Hour   int   `arg:"" help:"Hour of day, 0-23."`
}

func (c *ReminderSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetReminder(ctx.Context(), c.UserID, c.Hour); err != nil {
		return err
	}
	ctx.Printf("Reminder set for %02d:00\n", c.Hour)
	return nil
}

type ReminderShowCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
}

func (c *ReminderShowCmd) Run(ctx *Context) error {
	hour, set, err := ctx.Store.GetReminder(ctx.Context(), c.UserID)
	if err != nil {
		return err
	}
	if !set {
		ctx.Println("Reminder: off")
		return nil
	}
	ctx.Printf("Reminder: %s\n", FormatReminder(&hour))
	return nil
}

type ReminderClearCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
}

func (c *ReminderClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.ClearReminder(ctx.Context(), c.UserID); err != nil {
		return err
	}
	ctx.Println("Reminder turned off.")
	return nil
}

type ReminderDueCmd struct {
	Hour int `arg:"" help:"Hour of day, 0-23."`
}

func (c *ReminderDueCmd) Run(ctx *Context) error {
	users, err := ctx.Store.GetUsersForReminderHour(ctx.Context(), c.Hour)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		ctx.Printf("No reminders due at %02d:00\n", c.Hour)
		return nil
	}
	for _, u := range users {
		ctx.Printf("%d\n", u.UserID)
	}
	return nil
}
