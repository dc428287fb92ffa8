package system

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/mindfulmeet/internal/cli"
	"github.com/julianstephens/mindfulmeet/internal/constants"
)

type DebugCmd struct {
	Paths  *DebugPathsCmd  `cmd:"" help:"Show config and log file paths."`
	Config *DebugConfigCmd `cmd:"" help:"Dump the effective configuration as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"config_dir": ctx.ConfigDir,
		"log_file":   filepath.Join(ctx.ConfigDir, "logs", constants.AppName+".log"),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(ctx.Writer(), string(jsonBytes))
	return nil
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *cli.Context) error {
	jsonBytes, err := json.MarshalIndent(ctx.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(ctx.Writer(), string(jsonBytes))
	return nil
}
