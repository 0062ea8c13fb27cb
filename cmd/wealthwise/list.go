package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/format"
	"github.com/AlexanderJohnD/WealthWise/internal/input"
)

type recordKind string

const (
	kindAccounts    recordKind = "accounts"
	kindInvestments recordKind = "investments"
	kindExpenses    recordKind = "expenses"
	kindGoals       recordKind = "goals"
)

// listCmd prints every record of one kind.
type listCmd struct {
	kind recordKind
}

func (c *listCmd) Name() string     { return string(c.kind) }
func (c *listCmd) Synopsis() string { return "list " + string(c.kind) }
func (c *listCmd) Usage() string {
	return fmt.Sprintf(`wealthwise %s

  Lists all %s, newest first for investments and expenses.
`, c.kind, c.kind)
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *listCmd) run(ctx context.Context, a *app) error {
	switch c.kind {
	case kindAccounts:
		accounts, err := a.accounts.ListAccounts(ctx, a.ownerID)
		if err != nil {
			return err
		}
		a.print(format.Accounts(accounts))
	case kindInvestments:
		investments, err := a.investments.ListInvestments(ctx, a.ownerID)
		if err != nil {
			return err
		}
		a.print(format.Investments(investments))
	case kindExpenses:
		expenses, err := a.expenses.ListExpenses(ctx, a.ownerID)
		if err != nil {
			return err
		}
		a.print(format.Expenses(expenses))
	case kindGoals:
		goals, err := a.goals.ListGoals(ctx)
		if err != nil {
			return err
		}
		a.print(format.Goals(goals))
	default:
		return fmt.Errorf("unknown record kind %q", c.kind)
	}
	return nil
}

// execute opens the app, runs fn and maps its error to an exit status.
func execute(ctx context.Context, fn func(context.Context, *app) error) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening WealthWise: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	return exitStatus(fn(ctx, a))
}

func exitStatus(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, input.ErrAborted):
		fmt.Fprintln(os.Stderr, "Cancelled.")
		return subcommands.ExitFailure
	case apperrors.IsValidation(err):
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}
