package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/mindfulmeet/internal/cli"
	"github.com/julianstephens/mindfulmeet/internal/cli/system"
	"github.com/julianstephens/mindfulmeet/internal/config"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/errors"
	"github.com/julianstephens/mindfulmeet/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging." env:"MINDFULMEET_DEBUG"`
	ConfigDir string `help:"Directory for the config file and logs." type:"path" default:"${config_dir}" env:"MINDFULMEET_CONFIG_DIR"`

	config.Config `embed:"" group:"Session"`

	Tui      system.TuiCmd   `cmd:"" help:"Launch the wellness dashboard." default:"1"`
	Day      cli.DayCmd      `cmd:"" help:"Print the meeting timeline for a day."`
	Score    cli.ScoreCmd    `cmd:"" help:"Apply score changes and print the result."`
	DebugCmd system.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Meeting wellness dashboard: wellness score, burnout risk and mindful breaks."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":    constants.Version,
			"config_dir": constants.DefaultConfigDir,
		},
	)

	// Only one-shot commands may write logs to the terminal.
	console := ctx.Command() != "tui"
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir, Console: console}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	if err := CLI.Config.Validate(); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:    CLI.Config,
		ConfigDir: CLI.ConfigDir,
	}

	errors.Fatal(ctx.Run(appCtx))
}
