// Command wealthwise records accounts, investments, expenses and goals from
// the terminal and prints the dashboard, sharing the server's configuration
// and storage.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/AlexanderJohnD/WealthWise/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// register adds the WealthWise subcommands to c.
func register(c *subcommands.Commander) {
	c.Register(&listCmd{kind: kindAccounts}, "records")
	c.Register(&addAccountCmd{}, "records")
	c.Register(&listCmd{kind: kindInvestments}, "records")
	c.Register(&addInvestmentCmd{}, "records")
	c.Register(&listCmd{kind: kindExpenses}, "records")
	c.Register(&addExpenseCmd{}, "records")

	c.Register(&listCmd{kind: kindGoals}, "goals")
	c.Register(&addGoalCmd{}, "goals")

	c.Register(&dashboardCmd{}, "reports")
}
