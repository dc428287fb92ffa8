package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindfulmeet/internal/cli"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	s, err := ctx.NewSession()
	if err != nil {
		return err
	}
	// The model closes the session on a normal quit; this covers program errors.
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("Session close failed", "error", err)
		}
	}()

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with an error: %w", err)
	}
	return nil
}
