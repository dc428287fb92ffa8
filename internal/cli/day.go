package cli

import (
	"fmt"

	"github.com/julianstephens/mindfulmeet/internal/calendar"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/timeline"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ParseDate(c.Date, ctx.Clock())
	if err != nil {
		return err
	}

	view := calendar.NewView(date)
	out := ctx.Writer()

	fmt.Fprintf(out, "%s\n\n", view.Header())

	entries := view.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "  No meetings scheduled")
		return nil
	}

	highStress := 0
	for _, e := range entries {
		fmt.Fprintf(out, "  %s\n", timeline.PlainLine(e))
		if e.IsHighStress() {
			highStress++
		}
	}
	if highStress > 0 {
		fmt.Fprintf(out, "\n  %d high-stress meeting(s). Consider buffer time.\n", highStress)
	}
	return nil
}
