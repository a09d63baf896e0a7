package stoich

import (
	"fmt"
	"sort"
	"strings"
)

// Gene-reaction rules are boolean expressions over gene identifiers, e.g.
// "b1854 or b1676" (isozymes) and "b0114 and b0115" (complex subunits).
// A reaction survives a knockout set as long as its rule still evaluates
// true with the deleted genes absent.
//
// Grammar (case-insensitive keywords, parentheses for grouping):
//
//	expr   := term { "or" term }
//	term   := factor { "and" factor }
//	factor := GENE | "(" expr ")"

// ruleNode is a parsed gene-reaction rule.
type ruleNode interface {
	// eval reports whether the rule holds with the given genes deleted.
	eval(deleted map[string]bool) bool
}

type geneNode string

func (g geneNode) eval(deleted map[string]bool) bool { return !deleted[string(g)] }

type andNode []ruleNode

func (a andNode) eval(deleted map[string]bool) bool {
	for _, c := range a {
		if !c.eval(deleted) {
			return false
		}
	}
	return true
}

type orNode []ruleNode

func (o orNode) eval(deleted map[string]bool) bool {
	for _, c := range o {
		if c.eval(deleted) {
			return true
		}
	}
	return false
}

// parseRule parses a gene-reaction rule and returns its root node plus the
// sorted set of genes it mentions.
func parseRule(rule string) (ruleNode, []string, error) {
	p := &ruleParser{tokens: tokenizeRule(rule), genes: make(map[string]bool)}
	if len(p.tokens) == 0 {
		return nil, nil, fmt.Errorf("empty gene-reaction rule")
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, nil, fmt.Errorf("unexpected token %q in rule", p.tokens[p.pos])
	}
	genes := make([]string, 0, len(p.genes))
	for g := range p.genes {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return node, genes, nil
}

func tokenizeRule(rule string) []string {
	rule = strings.ReplaceAll(rule, "(", " ( ")
	rule = strings.ReplaceAll(rule, ")", " ) ")
	return strings.Fields(rule)
}

type ruleParser struct {
	tokens []string
	pos    int
	genes  map[string]bool
}

func (p *ruleParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *ruleParser) parseExpr() (ruleNode, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := orNode{node}
	for strings.EqualFold(p.peek(), "or") {
		p.pos++
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return terms, nil
}

func (p *ruleParser) parseTerm() (ruleNode, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	factors := andNode{node}
	for strings.EqualFold(p.peek(), "and") {
		p.pos++
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, next)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return factors, nil
}

func (p *ruleParser) parseFactor() (ruleNode, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("rule ended where a gene or '(' was expected")
	case tok == "(":
		p.pos++
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("missing ')' in rule")
		}
		p.pos++
		return node, nil
	case tok == ")" || strings.EqualFold(tok, "and") || strings.EqualFold(tok, "or"):
		return nil, fmt.Errorf("unexpected %q where a gene was expected", tok)
	default:
		p.pos++
		p.genes[tok] = true
		return geneNode(tok), nil
	}
}
