package quest

import (
	"errors"
	"strconv"
	"strings"
)

// evalArithmetic evaluates a restricted integer expression containing
// only digits, + - * /, and parentheses. Anything else is an error, so
// learner input can never reach a real interpreter.
func evalArithmetic(expr string) (int, error) {
	p := &exprParser{input: strings.TrimSpace(expr)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, errors.New("unexpected trailing input")
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseExpr handles + and -.
func (p *exprParser) parseExpr() (int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// parseTerm handles * and /.
func (p *exprParser) parseTerm() (int, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, errors.New("division by zero")
			}
			v /= rhs
		}
	}
}

// parseFactor handles numbers, unary minus, and parentheses.
func (p *exprParser) parseFactor() (int, error) {
	c, ok := p.peek()
	if !ok {
		return 0, errors.New("unexpected end of expression")
	}

	if c == '-' {
		p.pos++
		v, err := p.parseFactor()
		return -v, err
	}

	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		c, ok = p.peek()
		if !ok || c != ')' {
			return 0, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, errors.New("expected a number")
	}
	return strconv.Atoi(p.input[start:p.pos])
}
