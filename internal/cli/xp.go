package cli

type XPCmd struct {
	Add  XPAddCmd  `cmd:"" help:"Add (or subtract) XP."`
	Show XPShowCmd `cmd:"" help:"Show XP and level."`
}

type XPAddCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
	Amount int   `arg:"" help:"XP to add; negative values subtract, never below zero."`
}

func (c *XPAddCmd) Run(ctx *Context) error {
	progress, err := ctx.Store.AddXP(ctx.Context(), c.UserID, c.Amount)
	if err != nil {
		return err
	}
	ctx.Printf("User %d is now %s\n", c.UserID, FormatProgress(progress))
	return nil
}

type XPShowCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
}

func (c *XPShowCmd) Run(ctx *Context) error {
	progress, err := ctx.Store.GetXP(ctx.Context(), c.UserID)
	if err != nil {
		return err
	}
	ctx.Printf("User %d: %s\n", c.UserID, FormatProgress(progress))
	return nil
}
