// Package formula provides parsing and evaluation of user-supplied
// arithmetic expressions over tabular rows.
//
// The language is deliberately small: numeric literals, column-name
// identifiers, the operators + - * / % **, unary minus, and parentheses.
// Anything else (function calls, attribute access, comparisons) is
// rejected at parse time, so a formula can never reach outside the row it
// is evaluated against.
//
// Example usage:
//
//	expr, err := formula.Parse("damage / duration")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := expr.Eval(row)
package formula

import (
	"errors"
	"fmt"
)

// Validation limits to bound user-supplied input.
const (
	// MaxFormulaLength is the maximum allowed formula string length
	MaxFormulaLength = 4096

	// MaxTokens is the maximum number of tokens in a formula
	MaxTokens = 256

	// MaxDepth is the maximum nesting depth for expressions
	MaxDepth = 64
)

var (
	// ErrFormulaTooLong is returned when a formula exceeds MaxFormulaLength
	ErrFormulaTooLong = errors.New("formula too long")

	// ErrTooManyTokens is returned when a formula has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in formula")

	// ErrTooDeep is returned when expression nesting exceeds MaxDepth
	ErrTooDeep = errors.New("formula nesting too deep")

	// ErrEmptyFormula is returned for a blank formula string
	ErrEmptyFormula = errors.New("formula is empty")
)

// FormulaError wraps any failure caused by a user-supplied formula:
// invalid syntax, unknown columns, or an evaluation fault. It is always
// recoverable; callers report it as a diagnostic and keep going.
type FormulaError struct {
	Formula string
	Err     error
}

// Error implements the error interface.
func (e *FormulaError) Error() string {
	return fmt.Sprintf("formula %q: %v", e.Formula, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FormulaError) Unwrap() error {
	return e.Err
}

// failf builds a *FormulaError for the given formula string.
func failf(formula, format string, args ...interface{}) error {
	return &FormulaError{Formula: formula, Err: fmt.Errorf(format, args...)}
}

// fail wraps err in a *FormulaError unless it already is one.
func fail(formula string, err error) error {
	var fe *FormulaError
	if errors.As(err, &fe) {
		return err
	}
	return &FormulaError{Formula: formula, Err: err}
}

// Parse parses a formula string into an evaluable expression. All
// failures are *FormulaError.
func Parse(input string) (Expr, error) {
	if len(input) > MaxFormulaLength {
		return nil, failf(input, "%w: %d bytes (max %d)", ErrFormulaTooLong, len(input), MaxFormulaLength)
	}

	tokens := Tokenize(input)
	if len(tokens) > MaxTokens {
		return nil, failf(input, "%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	if len(tokens) == 1 && tokens[0].Type == TokenEOF {
		return nil, fail(input, ErrEmptyFormula)
	}

	parser := newParser(input, tokens)
	expr, err := parser.parseExpr()
	if err != nil {
		return nil, fail(input, err)
	}

	if parser.current().Type == TokenError {
		return nil, failf(input, "invalid character: %s", parser.current().Value)
	}
	if parser.current().Type != TokenEOF {
		return nil, failf(input, "unexpected trailing token: %s", parser.current().Value)
	}

	return expr, nil
}

// depthCounter tracks expression nesting depth during parsing.
type depthCounter struct {
	depth int
}

func (c *depthCounter) enter() error {
	c.depth++
	if c.depth > MaxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrTooDeep, c.depth, MaxDepth)
	}
	return nil
}

func (c *depthCounter) exit() {
	c.depth--
}
