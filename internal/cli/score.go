package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/mindfulmeet/internal/logger"
)

type ScoreCmd struct {
	Deltas []int `name:"delta" short:"d" help:"Score change to apply, e.g. --delta=5 or --delta=-3 (negative values need the = form). Repeat or comma-separate to apply several in order."`
	JSON   bool  `help:"Print the result as JSON."`
}

type scoreResult struct {
	Score     int    `json:"score"`
	Label     string `json:"label"`
	Risk      int    `json:"risk"`
	RiskLevel string `json:"risk_level"`
	Changes   int    `json:"changes"`
	Net       int    `json:"net"`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	s, err := ctx.NewSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("Session close failed", "error", err)
		}
	}()

	snap := s.Score.Snapshot()
	for _, d := range c.Deltas {
		snap = s.Score.Apply("cli", d)
	}

	totals, err := s.Journal.Totals()
	if err != nil {
		return fmt.Errorf("failed to read session totals: %w", err)
	}

	result := scoreResult{
		Score:     snap.Score,
		Label:     snap.Label,
		Risk:      snap.Risk,
		RiskLevel: string(snap.RiskLevel),
		Changes:   totals.Changes,
		Net:       totals.Net(),
	}

	out := ctx.Writer()
	if c.JSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(out, "Wellness score: %d (%s)\n", result.Score, result.Label)
	fmt.Fprintf(out, "Burnout risk:   %d%% (%s)\n", result.Risk, result.RiskLevel)
	if result.Changes > 0 {
		fmt.Fprintf(out, "Changes:        %d (net %+d)\n", result.Changes, result.Net)
	}
	return nil
}
