package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
)

// ErrAborted is returned when the input ends before every field was answered.
var ErrAborted = errors.New("input aborted")

// Field is one value to collect.
type Field struct {
	Name     string
	Prompt   string
	Optional bool
}

// Prompt sequences for each record kind.
var (
	AccountFields = []Field{
		{Name: "name", Prompt: "Account name"},
		{Name: "type", Prompt: "Account type (checking, savings, investment)"},
		{Name: "balance", Prompt: "Current balance (optional)", Optional: true},
	}
	InvestmentFields = []Field{
		{Name: "symbol", Prompt: "Enter stock symbol (e.g., AAPL)"},
		{Name: "shares", Prompt: "Number of shares"},
		{Name: "purchase_price", Prompt: "Purchase price per share"},
	}
	ExpenseFields = []Field{
		{Name: "description", Prompt: "Expense description"},
		{Name: "amount", Prompt: "Amount"},
		{Name: "category", Prompt: "Category (e.g., Food, Transport, Entertainment)"},
	}
	GoalFields = []Field{
		{Name: "title", Prompt: "Goal title (e.g., Emergency Fund)"},
		{Name: "target", Prompt: "Target amount"},
		{Name: "current", Prompt: "Current amount (optional)", Optional: true},
	}
)

// Collector gathers raw answers for fields, keyed by field name. A required
// field left empty is a ValidationError.
type Collector interface {
	Collect(fields []Field) (map[string]string, error)
}

// PromptCollector asks for each field in turn on out and reads one line per
// answer from in.
type PromptCollector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptCollector creates a PromptCollector.
func NewPromptCollector(in io.Reader, out io.Writer) *PromptCollector {
	return &PromptCollector{in: bufio.NewReader(in), out: out}
}

// Collect prompts for fields in order and stops at the first required field
// left empty.
func (p *PromptCollector) Collect(fields []Field) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.out, "%s: ", f.Prompt); err != nil {
			return nil, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		answer := strings.TrimSpace(line)
		if answer == "" && !f.Optional {
			if err != nil {
				return nil, ErrAborted
			}
			return nil, apperrors.Validation(fmt.Sprintf("%s is required", f.Name))
		}
		values[f.Name] = answer
	}
	return values, nil
}

// StaticCollector answers from a fixed set of values, such as command-line
// flags.
type StaticCollector map[string]string

// Collect returns the stored answer for each field.
func (s StaticCollector) Collect(fields []Field) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		answer := strings.TrimSpace(s[f.Name])
		if answer == "" && !f.Optional {
			return nil, apperrors.Validation(fmt.Sprintf("%s is required", f.Name))
		}
		values[f.Name] = answer
	}
	return values, nil
}

// CollectAccount collects and validates a new account.
func CollectAccount(c Collector) (AccountInput, error) {
	values, err := c.Collect(AccountFields)
	if err != nil {
		return AccountInput{}, err
	}

	in := AccountInput{Name: values["name"], Type: values["type"]}
	if raw := values["balance"]; raw != "" {
		balance, err := parseDecimal("balance", raw)
		if err != nil {
			return AccountInput{}, err
		}
		in.Balance = &balance
	}
	return in, in.Validate()
}

// CollectInvestment collects and validates a new holding.
func CollectInvestment(c Collector) (InvestmentInput, error) {
	values, err := c.Collect(InvestmentFields)
	if err != nil {
		return InvestmentInput{}, err
	}

	shares, err := strconv.ParseInt(values["shares"], 10, 64)
	if err != nil {
		return InvestmentInput{}, apperrors.Validation("shares must be a whole number")
	}
	price, err := parseDecimal("purchase_price", values["purchase_price"])
	if err != nil {
		return InvestmentInput{}, err
	}

	in := InvestmentInput{Symbol: values["symbol"], Shares: shares, PurchasePrice: price}
	return in, in.Validate()
}

// CollectExpense collects and validates a new expense.
func CollectExpense(c Collector) (ExpenseInput, error) {
	values, err := c.Collect(ExpenseFields)
	if err != nil {
		return ExpenseInput{}, err
	}

	amount, err := parseDecimal("amount", values["amount"])
	if err != nil {
		return ExpenseInput{}, err
	}

	in := ExpenseInput{Description: values["description"], Amount: amount, Category: values["category"]}
	return in, in.Validate()
}

// CollectGoal collects and validates a new goal.
func CollectGoal(c Collector) (GoalInput, error) {
	values, err := c.Collect(GoalFields)
	if err != nil {
		return GoalInput{}, err
	}

	target, err := parseDecimal("target", values["target"])
	if err != nil {
		return GoalInput{}, err
	}

	in := GoalInput{Title: values["title"], Target: target}
	if raw := values["current"]; raw != "" {
		current, err := parseDecimal("current", raw)
		if err != nil {
			return GoalInput{}, err
		}
		in.Current = &current
	}
	return in, in.Validate()
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if err != nil {
		return decimal.Zero, apperrors.Validation(fmt.Sprintf("%s must be a number", name))
	}
	return d, nil
}
