// Package calc evaluates infix arithmetic expressions over fixed-point
// decimals.
//
// The following operators are supported, in order of increasing precedence:
//
//	+  -     addition, subtraction
//	*  /     multiplication, division
//	// %     floored division, floored remainder
//	-        negation
//	^        power (the exponent must be an integer)
//
// Parentheses may be used for grouping.
package calc

import (
	"errors"
	"fmt"

	"github.com/metrima/fx"
)

// ErrSyntax is returned when an expression cannot be parsed.
var ErrSyntax = errors.New("syntax error")

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind tokenKind
	text string
}

// Operator precedence and associativity.
// The unary minus is spelled "u-" after tokenization.
var (
	precedence = map[string]int{
		"+": 1, "-": 1,
		"*": 2, "/": 2, "//": 2, "%": 2,
		"u-": 3,
		"^":  4,
	}
	rightAssoc = map[string]bool{
		"u-": true,
		"^":  true,
	}
)

// Evaluate parses and evaluates an arithmetic expression,
// for example "(0.1 + 0.2) * 10".
//
// Evaluate returns an error if the expression is malformed or
// if any operation fails, in which case the error wraps the
// corresponding sentinel of the fx package.
func Evaluate(input string) (fx.Fx, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return fx.Fx{}, err
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return fx.Fx{}, err
	}
	return evalPostfix(postfix)
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	pos := 0
	for pos < len(input) {
		c := input[pos]
		switch {
		case c == ' ' || c == '\t':
			pos++
		case '0' <= c && c <= '9' || c == '.':
			start := pos
			for pos < len(input) && ('0' <= input[pos] && input[pos] <= '9' || input[pos] == '.') {
				pos++
			}
			tokens = append(tokens, token{tokenNumber, input[start:pos]})
		case c == '(':
			tokens = append(tokens, token{tokenLeftParen, "("})
			pos++
		case c == ')':
			tokens = append(tokens, token{tokenRightParen, ")"})
			pos++
		case c == '/':
			if pos+1 < len(input) && input[pos+1] == '/' {
				tokens = append(tokens, token{tokenOperator, "//"})
				pos += 2
			} else {
				tokens = append(tokens, token{tokenOperator, "/"})
				pos++
			}
		case c == '+' || c == '*' || c == '%' || c == '^':
			tokens = append(tokens, token{tokenOperator, string(c)})
			pos++
		case c == '-':
			if unary(tokens) {
				tokens = append(tokens, token{tokenOperator, "u-"})
			} else {
				tokens = append(tokens, token{tokenOperator, "-"})
			}
			pos++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, c)
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	return tokens, nil
}

// unary reports whether a minus at the current position negates
// its operand instead of subtracting.
func unary(tokens []token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	return last.kind == tokenOperator || last.kind == tokenLeftParen
}

// toPostfix converts tokens to reverse Polish notation using
// the shunting yard algorithm.
func toPostfix(tokens []token) ([]token, error) {
	var output, ops []token
	for _, tok := range tokens {
		switch tok.kind {
		case tokenNumber:
			output = append(output, tok)
		case tokenOperator:
			// A prefix operator never pops: nothing to its left
			// can be complete yet.
			for tok.text != "u-" && len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOperator {
					break
				}
				if precedence[top.text] < precedence[tok.text] ||
					(precedence[top.text] == precedence[tok.text] && rightAssoc[tok.text]) {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenLeftParen:
			ops = append(ops, tok)
		case tokenRightParen:
			for {
				if len(ops) == 0 {
					return nil, fmt.Errorf("%w: unmatched %q", ErrSyntax, ")")
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenLeftParen {
					break
				}
				output = append(output, top)
			}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenLeftParen {
			return nil, fmt.Errorf("%w: unmatched %q", ErrSyntax, "(")
		}
		output = append(output, top)
	}
	return output, nil
}

func evalPostfix(tokens []token) (fx.Fx, error) {
	stack := make([]fx.Fx, 0, len(tokens))
	for _, tok := range tokens {
		if tok.kind == tokenNumber {
			d, err := fx.Parse(tok.text)
			if err != nil {
				return fx.Fx{}, fmt.Errorf("evaluating %q: %w", tok.text, err)
			}
			stack = append(stack, d)
			continue
		}
		var err error
		stack, err = applyOperator(stack, tok.text)
		if err != nil {
			return fx.Fx{}, err
		}
	}
	if len(stack) != 1 {
		return fx.Fx{}, fmt.Errorf("%w: missing operator", ErrSyntax)
	}
	return stack[0], nil
}

func applyOperator(stack []fx.Fx, op string) ([]fx.Fx, error) {
	if op == "u-" {
		if len(stack) < 1 {
			return nil, fmt.Errorf("%w: missing operand", ErrSyntax)
		}
		stack[len(stack)-1] = stack[len(stack)-1].Neg()
		return stack, nil
	}

	if len(stack) < 2 {
		return nil, fmt.Errorf("%w: missing operand", ErrSyntax)
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]

	var result fx.Fx
	var err error
	switch op {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "//":
		result, err = left.FloorQuo(right)
	case "%":
		result, err = left.Mod(right)
	case "^":
		var power int64
		power, err = exponent(right)
		if err == nil {
			result, err = left.Pow(int(power))
		}
	default:
		err = fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
	}
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func exponent(e fx.Fx) (int64, error) {
	if !e.IsInt() {
		return 0, fmt.Errorf("%w: exponent %v is not an integer", ErrSyntax, e)
	}
	power, ok := e.Int64()
	if !ok {
		return 0, fmt.Errorf("exponent %v: %w", e, fx.ErrOverflow)
	}
	return power, nil
}
