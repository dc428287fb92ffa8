package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/config"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/journal"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/session"
)

type Context struct {
	Config    config.Config
	ConfigDir string
	Out       io.Writer
	// Now is the session clock source. Defaults to time.Now.
	Now func() time.Time
}

func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// NewSession builds a dashboard session backed by a fresh in-memory journal.
// The caller owns the session and must Close it.
func (c *Context) NewSession() (*session.Session, error) {
	j, err := journal.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open session journal: %w", err)
	}
	s := session.New(c.Config, c.Clock(), session.NewRand(c.Config.Seed), j)
	logger.Debug("Session created", "seed", c.Config.Seed, "score", c.Config.InitialScore)
	return s, nil
}

// ParseDate accepts YYYY-MM-DD or "today".
func ParseDate(value string, now time.Time) (time.Time, error) {
	if value == "" || value == "today" {
		return now, nil
	}
	date, err := time.ParseInLocation(constants.DateFormat, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}
