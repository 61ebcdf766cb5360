package surface

import (
	"github.com/gitrdm/foprover/pkg/prover"
)

// Parser is a small recursive-descent expression parser over a Lexer's
// token stream, fixed to the connective precedence ¬ > ∧ > ∨ > ⊕ > →/← >
// ↔ (all but ¬ left-associative), producing prover.Formula trees.
type Parser struct {
	lex         *Lexer
	tok         Token
	occurrences map[string][]occurrence
}

// NewParser constructs a Parser over src.
func NewParser(src string) (*Parser, error) {
	p := &Parser{lex: NewLexer(src), occurrences: map[string][]occurrence{}}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) next() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// ParseSequent parses a full `premise, premise |- conclusion, conclusion`
// sequent; either comma-separated list may be empty. It does not run the
// arity check — see ParseSequentChecked for the combined form cmd/prove
// uses.
func ParseSequent(src string) (prover.Sequent, error) {
	p, err := NewParser(src)
	if err != nil {
		return prover.Sequent{}, err
	}
	return p.parseSequent()
}

// ParseSequentChecked parses src and additionally runs the arity check
// over every predicate occurrence seen during parsing (§7 ArityMismatch,
// with line:col source spans that prover.Formula itself does not carry).
func ParseSequentChecked(src string) (prover.Sequent, error) {
	p, err := NewParser(src)
	if err != nil {
		return prover.Sequent{}, err
	}
	seq, err := p.parseSequent()
	if err != nil {
		return prover.Sequent{}, err
	}
	if err := CheckArities(p.occurrences); err != nil {
		return prover.Sequent{}, err
	}
	return seq, nil
}

func (p *Parser) parseSequent() (prover.Sequent, error) {
	premises, err := p.parseFormulaList(TokTurnstile)
	if err != nil {
		return prover.Sequent{}, err
	}
	if p.tok.Kind != TokTurnstile {
		return prover.Sequent{}, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected '|-'"}
	}
	if err := p.next(); err != nil {
		return prover.Sequent{}, err
	}
	conclusions, err := p.parseFormulaList(TokEOF)
	if err != nil {
		return prover.Sequent{}, err
	}
	if p.tok.Kind != TokEOF {
		return prover.Sequent{}, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "unexpected trailing input"}
	}
	return prover.Sequent{Premises: premises, Conclusions: conclusions}, nil
}

// parseFormulaList parses zero or more comma-separated formulas, stopping
// at stop or TokEOF.
func (p *Parser) parseFormulaList(stop TokenKind) ([]*prover.Formula, error) {
	if p.tok.Kind == stop || p.tok.Kind == TokEOF {
		return nil, nil
	}
	var out []*prover.Formula
	for {
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
		if p.tok.Kind != TokComma {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseIff: the lowest-precedence connective, left-associative.
func (p *Parser) parseIff() (*prover.Formula, error) {
	l, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokIff {
		if err := p.next(); err != nil {
			return nil, err
		}
		r, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		l = prover.Iff(l, r)
	}
	return l, nil
}

// parseImplication handles both → and ←, left-associative at the same
// precedence level.
func (p *Parser) parseImplication() (*prover.Formula, error) {
	l, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokImplies || p.tok.Kind == TokImpliedBy {
		kind := p.tok.Kind
		if err := p.next(); err != nil {
			return nil, err
		}
		r, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		if kind == TokImplies {
			l = prover.Implies(l, r)
		} else {
			l = prover.ImpliedBy(l, r)
		}
	}
	return l, nil
}

func (p *Parser) parseXor() (*prover.Formula, error) {
	l, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokXor {
		if err := p.next(); err != nil {
			return nil, err
		}
		r, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		l = prover.Xor(l, r)
	}
	return l, nil
}

func (p *Parser) parseOr() (*prover.Formula, error) {
	l, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokOr {
		if err := p.next(); err != nil {
			return nil, err
		}
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l = prover.Or(l, r)
	}
	return l, nil
}

func (p *Parser) parseAnd() (*prover.Formula, error) {
	l, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokAnd {
		if err := p.next(); err != nil {
			return nil, err
		}
		r, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		l = prover.And(l, r)
	}
	return l, nil
}

// parseNot is the highest-precedence connective, right-associative by
// construction (¬¬p parses as Not(Not(p))).
func (p *Parser) parseNot() (*prover.Formula, error) {
	if p.tok.Kind == TokNot {
		if err := p.next(); err != nil {
			return nil, err
		}
		f, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return prover.Not(f), nil
	}
	return p.parseAtom()
}

// parseAtom parses the leaves of the grammar: *, ~, a parenthesized
// formula, or a predicate/atom/equality built from identifiers.
func (p *Parser) parseAtom() (*prover.Formula, error) {
	switch p.tok.Kind {
	case TokTrue:
		if err := p.next(); err != nil {
			return nil, err
		}
		return prover.True(), nil
	case TokFalse:
		if err := p.next(); err != nil {
			return nil, err
		}
		return prover.False(), nil
	case TokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != TokRParen {
			return nil, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected ')'"}
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return f, nil
	case TokIdent:
		return p.parseIdentLed()
	}
	return nil, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected a formula"}
}

// parseIdentLed handles the three forms that start with an identifier:
// a bare propositional atom `p`, a predicate application `p(a, b)`, and
// an (in)equality `a == b` / `a != b` between two term-constant symbols.
func (p *Parser) parseIdentLed() (*prover.Formula, error) {
	name := p.tok.Text
	line, col := p.tok.Line, p.tok.Col
	if err := p.next(); err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case TokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		var args []string
		if p.tok.Kind != TokRParen {
			for {
				if p.tok.Kind != TokIdent {
					return nil, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected argument identifier"}
				}
				args = append(args, p.tok.Text)
				if err := p.next(); err != nil {
					return nil, err
				}
				if p.tok.Kind != TokComma {
					break
				}
				if err := p.next(); err != nil {
					return nil, err
				}
			}
		}
		if p.tok.Kind != TokRParen {
			return nil, &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected ')'"}
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		p.occurrences[name] = append(p.occurrences[name], occurrence{arity: len(args), line: line, col: col})
		return prover.Pred(name, args...), nil
	case TokEq:
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return prover.EqF(name, rhs), nil
	case TokNeq:
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return prover.NeqF(name, rhs), nil
	}
	p.occurrences[name] = append(p.occurrences[name], occurrence{arity: 0, line: line, col: col})
	return prover.Atom(name), nil
}

func (p *Parser) expectIdent() (string, error) {
	if p.tok.Kind != TokIdent {
		return "", &prover.ParseError{Line: p.tok.Line, Col: p.tok.Col, Msg: "expected identifier"}
	}
	name := p.tok.Text
	if err := p.next(); err != nil {
		return "", err
	}
	return name, nil
}
