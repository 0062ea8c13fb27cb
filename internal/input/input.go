// Package input collects and validates new records before they reach the
// services. The same structs are bound from HTTP request bodies and filled
// from interactive prompts.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
	wwvalidator "github.com/AlexanderJohnD/WealthWise/internal/validator"
)

// validate checks the same binding tags gin checks on request bodies.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	wwvalidator.RegisterOn(v)
	return v
}

// AccountInput is a new account. Balance is optional and may be negative.
type AccountInput struct {
	Name    string           `json:"name" binding:"required,notblank"`
	Type    string           `json:"type" binding:"required,notblank"`
	Balance *decimal.Decimal `json:"balance"`
}

// InvestmentInput is a new holding.
type InvestmentInput struct {
	Symbol        string          `json:"symbol" binding:"required,ticker"`
	Shares        int64           `json:"shares" binding:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required,gt=0"`
}

// ExpenseInput is a new expense.
type ExpenseInput struct {
	Description string          `json:"description" binding:"required,notblank"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Category    string          `json:"category" binding:"required,notblank"`
}

// GoalInput is a new savings goal. Current defaults to zero.
type GoalInput struct {
	Title   string           `json:"title" binding:"required,notblank"`
	Target  decimal.Decimal  `json:"target" binding:"required,gt=0"`
	Current *decimal.Decimal `json:"current"`
}

// Validate reports the first problem with in as a ValidationError.
func (in AccountInput) Validate() error {
	return check(in)
}

// AccountType returns the normalized account type tag.
func (in AccountInput) AccountType() models.AccountType {
	return models.AccountType(strings.ToLower(strings.TrimSpace(in.Type)))
}

// Validate reports the first problem with in as a ValidationError.
func (in InvestmentInput) Validate() error {
	return check(in)
}

// Validate reports the first problem with in as a ValidationError.
func (in ExpenseInput) Validate() error {
	return check(in)
}

// Validate reports the first problem with in as a ValidationError. A goal
// cannot start with more saved than its target.
func (in GoalInput) Validate() error {
	if err := check(in); err != nil {
		return err
	}
	if in.Current != nil {
		if in.Current.IsNegative() {
			return apperrors.Validation("current cannot be negative")
		}
		if in.Current.GreaterThan(in.Target) {
			return apperrors.Validation("current cannot exceed target")
		}
	}
	return nil
}

func check(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return ToValidationError(err)
	}
	return nil
}

// ToValidationError converts a binding or decoding failure into a
// ValidationError with a message naming the offending field.
func ToValidationError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && apperrors.IsValidation(appErr) {
		return appErr
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.Validation(describe(fieldErrs[0]))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(fmt.Sprintf("%s has the wrong type", typeErr.Field))
	}

	if errors.Is(err, io.EOF) {
		return apperrors.Validation("request body is empty")
	}
	return apperrors.Validation("malformed request body")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be positive", fe.Field())
	case "ticker":
		return fmt.Sprintf("%s is not a valid ticker symbol", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
