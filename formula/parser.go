package formula

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	token string // Last token read
}

// Parse parses a formula from the given input Reader.
// Formulas are written using the following operators, from lowest to highest
// priority:
//
//   - "<->" for a biconditional,
//   - "->" for an implication,
//   - "+" for an exclusive disjunction ("xor"),
//   - "|" for a disjunction and "-|" for its negation ("nor"),
//   - "&" for a conjunction and "-&" for its negation ("nand"),
//   - "~" for a negation (unary).
//
// All binary operators associate to the right. The identifiers "T" and "F"
// denote the true and false constants; any other identifier is a variable.
// Parentheses can be used to group subformulas.
func Parse(r io.Reader) (*Formula, error) {
	var s scanner.Scanner
	s.Init(r)
	p := parser{s: s}
	if err := p.scan(); err != nil {
		return nil, err
	}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, fmt.Errorf("unexpected trailing token %q at %s", p.token, p.s.Pos())
	}
	return f, nil
}

// ParseString parses a formula from the given string.
func ParseString(expr string) (*Formula, error) {
	return Parse(strings.NewReader(expr))
}

func isOperator(token string) bool {
	switch token {
	case "<->", "->", "+", "|", "-|", "&", "-&":
		return true
	}
	return false
}

func isIdent(token string) bool {
	for i, r := range token {
		if !unicode.IsLetter(r) && r != '_' && !(i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return token != ""
}

// scan reads the next token, gluing together the multi-rune operators "->",
// "-&", "-|" and "<->" that text/scanner splits apart.
func (p *parser) scan() error {
	if p.eof {
		return nil
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
	switch p.token {
	case "-":
		next := p.rawScan()
		if next != ">" && next != "&" && next != "|" {
			return fmt.Errorf("invalid token %q at %s", "-"+next, p.s.Pos())
		}
		p.token = "-" + next
	case "<":
		if next := p.rawScan(); next != "-" {
			return fmt.Errorf("invalid token %q at %s", "<"+next, p.s.Pos())
		}
		if next := p.rawScan(); next != ">" {
			return fmt.Errorf("invalid token %q at %s", "<-"+next, p.s.Pos())
		}
		p.token = "<->"
	}
	return nil
}

func (p *parser) rawScan() string {
	if p.eof {
		return ""
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	return p.s.TokenText()
}

// scanAfter reads the token following a binary operator, which must exist.
func (p *parser) scanAfter() error {
	if err := p.scan(); err != nil {
		return err
	}
	if p.eof {
		return fmt.Errorf("unexpected EOF")
	}
	return nil
}

func (p *parser) parseIff() (*Formula, error) {
	if p.eof {
		return nil, fmt.Errorf("at position %v, expected expression, found EOF", p.s.Pos())
	}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "<->" {
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f2, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		return Iff(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (*Formula, error) {
	f, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "->" {
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseXor() (*Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "+" {
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f2, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		return Xor(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (*Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if !p.eof && (p.token == "|" || p.token == "-|") {
		op := p.token
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if op == "|" {
			return Or(f, f2), nil
		}
		return Nor(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (*Formula, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if !p.eof && (p.token == "&" || p.token == "-&") {
		op := p.token
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if op == "&" {
			return And(f, f2), nil
		}
		return Nand(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseNot() (*Formula, error) {
	if isOperator(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "~" {
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (*Formula, error) {
	if p.eof {
		return nil, fmt.Errorf("expected expression, found EOF at %s", p.s.Pos())
	}
	if p.token == "(" {
		if err := p.scanAfter(); err != nil {
			return nil, err
		}
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, fmt.Errorf("expected closing parenthesis, found EOF at %s", p.s.Pos())
		}
		if p.token != ")" {
			return nil, fmt.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Pos())
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return f, nil
	}
	if !isIdent(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	token := p.token
	if err := p.scan(); err != nil {
		return nil, err
	}
	switch token {
	case "T":
		return True(), nil
	case "F":
		return False(), nil
	}
	return Var(token), nil
}
