package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/format"
)

// dashboardCmd prints the dashboard.
type dashboardCmd struct {
	asOf string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show net worth, cash flow, holdings and goals" }
func (*dashboardCmd) Usage() string {
	return `wealthwise dashboard [-d <date>]

  Prints the dashboard as of now, or as of the end of the given day
  (YYYY-MM-DD) or instant (RFC 3339).
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "evaluation date, YYYY-MM-DD or RFC 3339 (default now)")
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *dashboardCmd) run(ctx context.Context, a *app) error {
	asOf, err := parseAsOf(c.asOf)
	if err != nil {
		return err
	}
	summary, err := a.dashboard.Summary(ctx, a.ownerID, asOf)
	if err != nil {
		return err
	}
	a.print(format.Markdown(format.Dashboard(*summary)))
	return nil
}

// parseAsOf reads an evaluation instant. A bare date means the last instant
// of that day in UTC. Empty means now.
func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	day, err := time.Parse(format.DateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.Validation("date must be YYYY-MM-DD or RFC 3339")
	}
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
