package formula

import (
	"fmt"
	"math"
	"sort"

	"logdash/internal/table"
)

// Expr is an evaluable arithmetic expression over a single row.
type Expr interface {
	// Eval computes the expression value against a row's columns.
	Eval(row table.Row) (float64, error)

	// collectColumns appends every column name the expression references.
	collectColumns(set map[string]bool)
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

// ColumnExpr references a column by name.
type ColumnExpr struct {
	Name string
}

// UnaryExpr is a negation.
type UnaryExpr struct {
	X Expr
}

// BinaryExpr is an arithmetic operation on two subexpressions.
type BinaryExpr struct {
	Left     Expr
	Operator TokenType
	Right    Expr
}

// Eval returns the literal value.
func (n *NumberExpr) Eval(row table.Row) (float64, error) {
	return n.Value, nil
}

// Eval looks up the column value and coerces it to a number.
func (c *ColumnExpr) Eval(row table.Row) (float64, error) {
	value, exists := row[c.Name]
	if !exists {
		return 0, fmt.Errorf("column %q not found", c.Name)
	}
	num, ok := table.AsFloat(value)
	if !ok {
		return 0, fmt.Errorf("column %q is not numeric (got %T)", c.Name, value)
	}
	return num, nil
}

// Eval negates its operand.
func (u *UnaryExpr) Eval(row table.Row) (float64, error) {
	v, err := u.X.Eval(row)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// Eval evaluates both sides and applies the operator. Division and
// modulo by zero follow IEEE semantics (±Inf or NaN), matching numeric
// broadcasting behavior: the fault propagates as a value, not an error.
func (b *BinaryExpr) Eval(row table.Row) (float64, error) {
	left, err := b.Left.Eval(row)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval(row)
	if err != nil {
		return 0, err
	}

	switch b.Operator {
	case TokenPlus:
		return left + right, nil
	case TokenMinus:
		return left - right, nil
	case TokenStar:
		return left * right, nil
	case TokenSlash:
		return left / right, nil
	case TokenPercent:
		return math.Mod(left, right), nil
	case TokenPower:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported operator: %v", b.Operator)
	}
}

func (n *NumberExpr) collectColumns(set map[string]bool) {}

func (c *ColumnExpr) collectColumns(set map[string]bool) {
	set[c.Name] = true
}

func (u *UnaryExpr) collectColumns(set map[string]bool) {
	u.X.collectColumns(set)
}

func (b *BinaryExpr) collectColumns(set map[string]bool) {
	b.Left.collectColumns(set)
	b.Right.collectColumns(set)
}

// Columns returns the sorted set of column names an expression references.
func Columns(e Expr) []string {
	set := make(map[string]bool)
	e.collectColumns(set)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
