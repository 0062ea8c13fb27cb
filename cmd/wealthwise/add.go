package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/AlexanderJohnD/WealthWise/internal/format"
	"github.com/AlexanderJohnD/WealthWise/internal/input"
)

// answers holds flag values keyed by input field name, plus the -i switch.
type answers struct {
	values      map[string]*string
	interactive bool
}

func (ans *answers) bind(f *flag.FlagSet, fields []input.Field) {
	ans.values = make(map[string]*string, len(fields))
	for _, field := range fields {
		ans.values[field.Name] = f.String(field.Name, "", field.Prompt)
	}
	f.BoolVar(&ans.interactive, "i", false, "prompt for each value instead of reading flags")
}

// collector returns where the record's values come from.
func (ans *answers) collector(a *app) input.Collector {
	if ans.interactive {
		return input.NewPromptCollector(a.in, a.out)
	}
	static := make(input.StaticCollector, len(ans.values))
	for name, v := range ans.values {
		static[name] = *v
	}
	return static
}

type addAccountCmd struct{ answers }

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "record a new account" }
func (*addAccountCmd) Usage() string {
	return `wealthwise add-account -name <name> -type <type> [-balance <amount>]
wealthwise add-account -i

  Records an account. The balance defaults to zero.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) { c.bind(f, input.AccountFields) }

func (c *addAccountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *addAccountCmd) run(ctx context.Context, a *app) error {
	in, err := input.CollectAccount(c.collector(a))
	if err != nil {
		return err
	}
	account, err := a.accounts.CreateAccount(ctx, a.ownerID, in.Name, in.AccountType(), in.Balance)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added account #%d %s (%s)\n", account.ID, account.Name, format.Currency(account.Balance))
	return nil
}

type addInvestmentCmd struct{ answers }

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "record a purchase of shares" }
func (*addInvestmentCmd) Usage() string {
	return `wealthwise add-investment -symbol <ticker> -shares <n> -purchase_price <amount>
wealthwise add-investment -i

  Records a holding bought today.
`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) { c.bind(f, input.InvestmentFields) }

func (c *addInvestmentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *addInvestmentCmd) run(ctx context.Context, a *app) error {
	in, err := input.CollectInvestment(c.collector(a))
	if err != nil {
		return err
	}
	inv, err := a.investments.CreateInvestment(ctx, a.ownerID, in.Symbol, in.Shares, in.PurchasePrice)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %d %s at %s\n", inv.Shares, inv.Symbol, format.Currency(inv.PurchasePrice))
	return nil
}

type addExpenseCmd struct{ answers }

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record money spent today" }
func (*addExpenseCmd) Usage() string {
	return `wealthwise add-expense -description <text> -amount <amount> -category <category>
wealthwise add-expense -i

  Records an expense dated now.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) { c.bind(f, input.ExpenseFields) }

func (c *addExpenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *addExpenseCmd) run(ctx context.Context, a *app) error {
	in, err := input.CollectExpense(c.collector(a))
	if err != nil {
		return err
	}
	exp, err := a.expenses.CreateExpense(ctx, a.ownerID, in.Description, in.Amount, in.Category)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added expense %s: %s (%s)\n", exp.Description, format.Currency(exp.Amount), exp.Category)
	return nil
}

type addGoalCmd struct{ answers }

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "set a savings goal" }
func (*addGoalCmd) Usage() string {
	return `wealthwise add-goal -title <text> -target <amount> [-current <amount>]
wealthwise add-goal -i

  Adds a savings goal. The saved amount defaults to zero.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) { c.bind(f, input.GoalFields) }

func (c *addGoalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(ctx, c.run)
}

func (c *addGoalCmd) run(ctx context.Context, a *app) error {
	in, err := input.CollectGoal(c.collector(a))
	if err != nil {
		return err
	}
	goal, err := a.goals.CreateGoal(ctx, in.Title, in.Target, in.Current)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added goal %s: %s of %s\n", goal.Title, format.Currency(goal.Current), format.Currency(goal.Target))
	return nil
}
