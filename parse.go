package algebra

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("algebra: syntax error")

// Parse builds an expression tree from infix notation. Supported input:
// decimal numbers, identifiers, braced identifiers ({v_1} may hold any
// characters except '}'), the four operators, parentheses and unary
// minus. Binary operators are left-associative with standard precedence,
// so "a - b - c" parses as (a - b) - c.
func Parse(input string) (Expr, error) {
	postfix, err := shuntingYard(input)
	if err != nil {
		return nil, err
	}
	return buildTree(postfix)
}

// ParseEquation splits "lhs = rhs" on the equals sign and parses both
// sides.
func ParseEquation(input string) (Equation, error) {
	parts := strings.Split(input, "=")
	if len(parts) != 2 {
		return Equation{}, fmt.Errorf("%w: equation needs exactly one '='", ErrSyntax)
	}
	lhs, err := Parse(parts[0])
	if err != nil {
		return Equation{}, err
	}
	rhs, err := Parse(parts[1])
	if err != nil {
		return Equation{}, err
	}
	return NewEquation(lhs, rhs), nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenIdent
	tokenOperator
	tokenLParen
	tokenRParen
)

type token struct {
	typ tokenType
	val string
	pos int
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: l.pos}, nil
	}
	start := l.pos
	ch := rune(l.input[l.pos])

	switch {
	case ch == '+' || ch == '-' || ch == '*' || ch == '/':
		l.pos++
		return token{typ: tokenOperator, val: string(ch), pos: start}, nil
	case ch == '(':
		l.pos++
		return token{typ: tokenLParen, val: "(", pos: start}, nil
	case ch == ')':
		l.pos++
		return token{typ: tokenRParen, val: ")", pos: start}, nil
	case ch == '{':
		end := strings.IndexByte(l.input[l.pos:], '}')
		if end < 0 {
			return token{}, fmt.Errorf("%w: unterminated '{' at %d", ErrSyntax, start)
		}
		name := l.input[l.pos+1 : l.pos+end]
		l.pos += end + 1
		if name == "" {
			return token{}, fmt.Errorf("%w: empty braces at %d", ErrSyntax, start)
		}
		if _, err := strconv.ParseFloat(name, 64); err == nil {
			return token{typ: tokenNumber, val: name, pos: start}, nil
		}
		return token{typ: tokenIdent, val: name, pos: start}, nil
	case unicode.IsDigit(ch):
		for l.pos < len(l.input) && (isDigitByte(l.input[l.pos]) || l.input[l.pos] == '.') {
			l.pos++
		}
		return token{typ: tokenNumber, val: l.input[start:l.pos], pos: start}, nil
	case unicode.IsLetter(ch) || ch == '_':
		for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
			l.pos++
		}
		return token{typ: tokenIdent, val: l.input[start:l.pos], pos: start}, nil
	}
	return token{}, fmt.Errorf("%w: unexpected character %q at %d", ErrSyntax, ch, start)
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isIdentByte(b byte) bool {
	return b == '_' || isDigitByte(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Internal marker for unary minus on the operator stack and in postfix
// output; it cannot collide with input tokens.
const negOp = "neg"

func opPrecedence(op string) int {
	switch op {
	case negOp:
		return 3
	case "*", "/":
		return 2
	default:
		return 1
	}
}

// shuntingYard converts infix tokens to postfix order. A '-' at the
// start of an (sub)expression or right after an operator is unary.
func shuntingYard(input string) ([]token, error) {
	l := &lexer{input: input}
	var output []token
	var stack []token

	expectOperand := true
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.typ == tokenEOF {
			break
		}
		switch tok.typ {
		case tokenNumber, tokenIdent:
			if !expectOperand {
				return nil, fmt.Errorf("%w: unexpected operand %q at %d", ErrSyntax, tok.val, tok.pos)
			}
			output = append(output, tok)
			expectOperand = false

		case tokenOperator:
			if expectOperand {
				if tok.val != "-" {
					return nil, fmt.Errorf("%w: unexpected operator %q at %d", ErrSyntax, tok.val, tok.pos)
				}
				stack = append(stack, token{typ: tokenOperator, val: negOp, pos: tok.pos})
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.typ != tokenOperator || opPrecedence(top.val) < opPrecedence(tok.val) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
			expectOperand = true

		case tokenLParen:
			if !expectOperand {
				return nil, fmt.Errorf("%w: unexpected '(' at %d", ErrSyntax, tok.pos)
			}
			stack = append(stack, tok)

		case tokenRParen:
			if expectOperand {
				return nil, fmt.Errorf("%w: unexpected ')' at %d", ErrSyntax, tok.pos)
			}
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.typ == tokenLParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: mismatched ')' at %d", ErrSyntax, tok.pos)
			}
		}
	}
	if expectOperand {
		return nil, fmt.Errorf("%w: incomplete expression", ErrSyntax)
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.typ == tokenLParen {
			return nil, fmt.Errorf("%w: mismatched '(' at %d", ErrSyntax, top.pos)
		}
		output = append(output, top)
	}
	return output, nil
}

// buildTree folds a postfix token stream into an expression tree using
// an operand stack. Operators built here are binary; the n-ary node
// model holds them without special cases.
func buildTree(postfix []token) (Expr, error) {
	var stack []Expr
	pop := func() Expr {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return e
	}

	for _, tok := range postfix {
		switch tok.typ {
		case tokenNumber:
			f, err := strconv.ParseFloat(tok.val, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q at %d", ErrSyntax, tok.val, tok.pos)
			}
			stack = append(stack, Val(f))
		case tokenIdent:
			stack = append(stack, Var(tok.val))
		case tokenOperator:
			if tok.val == negOp {
				if len(stack) < 1 {
					return nil, fmt.Errorf("%w: missing operand at %d", ErrSyntax, tok.pos)
				}
				stack = append(stack, Multiply(Val(-1.0), pop()))
				continue
			}
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: missing operand at %d", ErrSyntax, tok.pos)
			}
			right := pop()
			left := pop()
			var kind Kind
			switch tok.val {
			case "+":
				kind = KindAdd
			case "-":
				kind = KindSubtract
			case "*":
				kind = KindMultiply
			case "/":
				kind = KindDivide
			}
			stack = append(stack, &Operation{kind: kind, children: []Expr{left, right}})
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: incomplete expression", ErrSyntax)
	}
	return stack[0], nil
}
