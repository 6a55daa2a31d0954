package cli

import (
	"github.com/julianstephens/jitsuna/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit."`
	Remove HabitRemoveCmd `cmd:"" help:"Remove a habit by name."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's status."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion of a habit."`
}

type HabitAddCmd struct {
	UserID int64  `arg:"" name:"user-id" help:"Chat user id."`
	Name   string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	id, err := ctx.Store.AddHabit(ctx.Context(), c.UserID, c.Name)
	if err != nil {
		return err
	}
	name, err := models.NormalizeHabitName(c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Added habit %q (%s)\n", name, id)
	return nil
}

type HabitRemoveCmd struct {
	UserID int64  `arg:"" name:"user-id" help:"Chat user id."`
	Name   string `arg:"" help:"Habit name."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.RemoveHabit(ctx.Context(), c.UserID, c.Name); err != nil {
		return err
	}
	ctx.Printf("Removed habit %q\n", c.Name)
	return nil
}

type HabitListCmd struct {
	UserID int64 `arg:"" name:"user-id" help:"Chat user id."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.ListHabits(ctx.Context(), c.UserID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	today := ctx.Store.Today()
	for _, h := range habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = "[x]"
		}
		ctx.Printf("%s %s  (%s)\n", mark, h.Name, h.ID)
	}
	return nil
}

type HabitToggleCmd struct {
	UserID  int64  `arg:"" name:"user-id" help:"Chat user id."`
	HabitID string `arg:"" name:"habit-id" help:"Habit id as shown by 'habit list'."`
	Award   int    `help:"XP to award when the toggle completes the habit." default:"0"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	completed, err := ctx.Store.ToggleHabit(ctx.Context(), c.UserID, c.HabitID)
	if err != nil {
		return err
	}

	if !completed {
		ctx.Println("Marked not done for today.")
		return nil
	}
	ctx.Println("Marked done for today.")

	// The reward is a separate store call; toggling never changes XP itself.
	if c.Award > 0 {
		progress, err := ctx.Store.AddXP(ctx.Context(), c.UserID, c.Award)
		if err != nil {
			return err
		}
		ctx.Printf("+%d XP, now %s\n", c.Award, FormatProgress(progress))
	}
	return nil
}
