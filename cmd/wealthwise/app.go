package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AlexanderJohnD/WealthWise/internal/config"
	"github.com/AlexanderJohnD/WealthWise/internal/database"
	"github.com/AlexanderJohnD/WealthWise/internal/format"
	"github.com/AlexanderJohnD/WealthWise/internal/goals"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

var (
	ownerFlag = flag.Uint("owner", 0, "Owner whose records to use (default DEFAULT_OWNER_ID)")
	styleFlag = flag.String("style", "dark", "Glamour style for terminal output: dark, light, notty or ascii")
)

// app is the set of services a command runs against.
type app struct {
	ownerID     uint
	accounts    services.AccountServicer
	investments services.InvestmentServicer
	expenses    services.ExpenseServicer
	goals       services.GoalServicer
	dashboard   services.DashboardServicer

	in    io.Reader
	out   io.Writer
	style string

	closers []func() error
}

// openApp connects to the configured database and goal store.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	goalRepo, closeGoals, err := goals.Open(ctx, cfg)
	if err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	owner := cfg.DefaultOwnerID
	if *ownerFlag != 0 {
		owner = *ownerFlag
	}

	db := dbManager.DB()
	return &app{
		ownerID:     owner,
		accounts:    services.NewAccountService(db),
		investments: services.NewInvestmentService(db),
		expenses:    services.NewExpenseService(db),
		goals:       services.NewGoalService(goalRepo),
		dashboard:   services.NewDashboardService(db, goalRepo, cfg.MonthlyIncome),
		in:          os.Stdin,
		out:         os.Stdout,
		style:       *styleFlag,
		closers:     []func() error{closeGoals, dbManager.Close},
	}, nil
}

// Close releases the goal store and the database.
func (a *app) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// print renders markdown for the terminal, falling back to the raw text
// when the style cannot be loaded.
func (a *app) print(markdown string) {
	rendered, err := format.Terminal(markdown, a.style)
	if err != nil {
		rendered = markdown
	}
	fmt.Fprint(a.out, rendered)
}
