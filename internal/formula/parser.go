package formula

import (
	"fmt"
	"strconv"
)

// parser parses token streams into expression ASTs.
//
// Grammar, lowest to highest precedence:
//
//	expr    := factor (('+' | '-') factor)* with '*' '/' '%' binding tighter
//	factor  := '-' factor | power
//	power   := primary ('**' factor)?       right-associative
//	primary := NUMBER | IDENT | '(' expr ')'
//
// Exponentiation binds tighter than unary minus on its left operand and
// looser on its right, so -2 ** 2 is -4 and 2 ** -1 is 0.5.
type parser struct {
	formula string
	tokens  []Token
	pos     int
	depth   depthCounter
}

func newParser(formula string, tokens []Token) *parser {
	return &parser{formula: formula, tokens: tokens}
}

// current returns the current token
func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *parser) advance() {
	p.pos++
}

// parseExpr parses additive expressions (lowest precedence)
func (p *parser) parseExpr() (Expr, error) {
	if err := p.depth.enter(); err != nil {
		return nil, err
	}
	defer p.depth.exit()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPlus || p.current().Type == TokenMinus {
		op := p.current().Type
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseTerm parses multiplicative expressions
func (p *parser) parseTerm() (Expr, error) {
	if err := p.depth.enter(); err != nil {
		return nil, err
	}
	defer p.depth.exit()

	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenStar || p.current().Type == TokenSlash || p.current().Type == TokenPercent {
		op := p.current().Type
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseFactor parses an optional chain of unary minus operators
func (p *parser) parseFactor() (Expr, error) {
	if err := p.depth.enter(); err != nil {
		return nil, err
	}
	defer p.depth.exit()

	if p.current().Type == TokenMinus {
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{X: operand}, nil
	}

	return p.parsePower()
}

// parsePower parses exponentiation, which associates to the right:
// a ** b ** c == a ** (b ** c).
func (p *parser) parsePower() (Expr, error) {
	if err := p.depth.enter(); err != nil {
		return nil, err
	}
	defer p.depth.exit()

	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.current().Type == TokenPower {
		p.advance()
		exponent, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Left: base, Operator: TokenPower, Right: exponent}, nil
	}

	return base, nil
}

// parsePrimary parses a literal, column reference, or parenthesized group
func (p *parser) parsePrimary() (Expr, error) {
	switch tok := p.current(); tok.Type {
	case TokenNumber:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", tok.Value)
		}
		p.advance()
		return &NumberExpr{Value: value}, nil

	case TokenIdent:
		p.advance()
		// An identifier followed by '(' would be a function call, which
		// the language forbids outright.
		if p.current().Type == TokenLeftParen {
			return nil, fmt.Errorf("function calls are not supported: %s(...)", tok.Value)
		}
		return &ColumnExpr{Name: tok.Value}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRightParen {
			return nil, fmt.Errorf("expected ')', got %s", describeToken(p.current()))
		}
		p.advance()
		return expr, nil

	case TokenError:
		return nil, fmt.Errorf("invalid character: %s", tok.Value)

	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of formula")

	default:
		return nil, fmt.Errorf("expected number, column name, or '(', got %s", describeToken(tok))
	}
}

// describeToken renders a token for error messages
func describeToken(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of formula"
	}
	return fmt.Sprintf("%q", tok.Value)
}
