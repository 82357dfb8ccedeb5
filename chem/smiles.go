package chem

import (
	"strings"
)

// ParseSmiles parses a SMILES string into a molecular graph.
//
// The supported grammar covers the organic subset, aromatic lowercase atoms,
// bracket atoms with isotope, charge and hydrogen counts, branches, ring
// closures (including %nn), bond symbols (- = # : / \) and dot-separated
// components. Stereo markers are accepted and discarded: the molecule model
// is constitutional only.
func ParseSmiles(s string) (*Mol, error) {
	p := &smilesParser{
		in:    s,
		prev:  -1,
		mol:   &Mol{},
		rings: map[int]ringOpening{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.mol, nil
}

// SplitReactionSmiles splits a reaction SMILES of the form
// "reactants>agents>products" into its dot-separated component SMILES.
// The two-arrow shorthand "reactants>>products" yields no agents.
func SplitReactionSmiles(s string) (reactants, agents, products []string, err error) {
	parts := strings.Split(s, ">")
	if len(parts) != 3 {
		return nil, nil, nil, parseErrorf(s, 0, "reaction SMILES must have exactly two > separators")
	}
	split := func(field string) []string {
		if field == "" {
			return nil
		}
		return strings.Split(field, ".")
	}
	reactants, agents, products = split(parts[0]), split(parts[1]), split(parts[2])
	for _, group := range [][]string{reactants, agents, products} {
		for _, comp := range group {
			if comp == "" {
				return nil, nil, nil, parseErrorf(s, 0, "empty reaction component")
			}
		}
	}
	if len(reactants) == 0 || len(products) == 0 {
		return nil, nil, nil, parseErrorf(s, 0, "reaction SMILES requires reactants and products")
	}
	return reactants, agents, products, nil
}

type ringOpening struct {
	atom  int
	order int // 0 when the opening did not specify a bond
	pos   int
}

type smilesParser struct {
	in    string
	pos   int
	mol   *Mol
	prev  int
	stack []int
	// pending is the bond symbol awaiting the next atom or ring closure;
	// 0 means unspecified.
	pending int
	rings   map[int]ringOpening
	// bracketed marks atoms whose hydrogen count is explicit.
	bracketed []bool
}

func (p *smilesParser) errf(pos int, format string, args ...any) error {
	return parseErrorf(p.in, pos, format, args...)
}

func (p *smilesParser) run() error {
	if p.in == "" {
		return p.errf(0, "empty SMILES")
	}
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errf(p.pos, "branch before any atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errf(p.pos, "unmatched )")
			}
			if p.pending != 0 {
				return p.errf(p.pos, "dangling bond before )")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '-' || c == '/' || c == '\\':
			if err := p.setPending(BondSingle); err != nil {
				return err
			}
		case c == '=':
			if err := p.setPending(BondDouble); err != nil {
				return err
			}
		case c == '#':
			if err := p.setPending(BondTriple); err != nil {
				return err
			}
		case c == ':':
			if err := p.setPending(BondAromatic); err != nil {
				return err
			}
		case c == '.':
			if p.pending != 0 {
				return p.errf(p.pos, "bond before component separator")
			}
			if p.prev < 0 {
				return p.errf(p.pos, "component separator before any atom")
			}
			p.prev = -1
			p.pos++
		case c >= '0' && c <= '9':
			if err := p.ringClosure(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.in) || !isDigit(p.in[p.pos+1]) || !isDigit(p.in[p.pos+2]) {
				return p.errf(p.pos, "%% requires two digits")
			}
			n := int(p.in[p.pos+1]-'0')*10 + int(p.in[p.pos+2]-'0')
			if err := p.ringClosure(n); err != nil {
				return err
			}
			p.pos += 3
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		default:
			if err := p.organicAtom(); err != nil {
				return err
			}
		}
	}
	if len(p.stack) > 0 {
		return p.errf(len(p.in), "unmatched (")
	}
	if p.pending != 0 {
		return p.errf(len(p.in), "dangling bond at end of input")
	}
	for n, open := range p.rings {
		return p.errf(open.pos, "unclosed ring bond %d", n)
	}
	p.resolveHydrogens()
	return nil
}

func (p *smilesParser) setPending(order int) error {
	if p.pending != 0 {
		return p.errf(p.pos, "two bond symbols in a row")
	}
	if p.prev < 0 {
		return p.errf(p.pos, "bond before any atom")
	}
	p.pending = order
	p.pos++
	return nil
}

func (p *smilesParser) addAtom(a Atom, bracket bool) {
	idx := len(p.mol.Atoms)
	p.mol.Atoms = append(p.mol.Atoms, a)
	p.bracketed = append(p.bracketed, bracket)
	if p.prev >= 0 {
		order := p.pending
		if order == 0 {
			order = defaultBondOrder(p.mol.Atoms[p.prev], a)
		}
		p.mol.Bonds = append(p.mol.Bonds, Bond{A: p.prev, B: idx, Order: order})
	}
	p.pending = 0
	p.prev = idx
}

func defaultBondOrder(a, b Atom) int {
	if a.Aromatic && b.Aromatic {
		return BondAromatic
	}
	return BondSingle
}

func (p *smilesParser) ringClosure(n int) error {
	if p.prev < 0 {
		return p.errf(p.pos, "ring closure before any atom")
	}
	open, ok := p.rings[n]
	if !ok {
		p.rings[n] = ringOpening{atom: p.prev, order: p.pending, pos: p.pos}
		p.pending = 0
		return nil
	}
	delete(p.rings, n)
	if open.atom == p.prev {
		return p.errf(p.pos, "ring bond %d closes on its own atom", n)
	}
	order := open.order
	switch {
	case order == 0:
		order = p.pending
	case p.pending != 0 && p.pending != order:
		return p.errf(p.pos, "conflicting bond orders for ring bond %d", n)
	}
	if order == 0 {
		order = defaultBondOrder(p.mol.Atoms[open.atom], p.mol.Atoms[p.prev])
	}
	for _, b := range p.mol.Bonds {
		if (b.A == open.atom && b.B == p.prev) || (b.A == p.prev && b.B == open.atom) {
			return p.errf(p.pos, "duplicate ring bond %d", n)
		}
	}
	p.mol.Bonds = append(p.mol.Bonds, Bond{A: open.atom, B: p.prev, Order: order})
	p.pending = 0
	return nil
}

func (p *smilesParser) organicAtom() error {
	c := p.in[p.pos]
	// Two-letter organic-subset symbols first.
	if p.pos+1 < len(p.in) {
		two := p.in[p.pos : p.pos+2]
		if two == "Cl" || two == "Br" {
			p.addAtom(Atom{Symbol: two}, false)
			p.pos += 2
			return nil
		}
	}
	sym := string(c)
	switch c {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I':
		p.addAtom(Atom{Symbol: sym}, false)
	case 'b', 'c', 'n', 'o', 'p', 's':
		p.addAtom(Atom{Symbol: strings.ToUpper(sym), Aromatic: true}, false)
	default:
		return p.errf(p.pos, "unexpected character %q", c)
	}
	p.pos++
	return nil
}

func (p *smilesParser) bracketAtom() error {
	start := p.pos
	p.pos++ // consume [

	var a Atom
	// Isotope.
	iso := 0
	for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
		iso = iso*10 + int(p.in[p.pos]-'0')
		p.pos++
	}
	a.Isotope = iso

	// Element symbol. Lowercase means aromatic; "se" and "as" are the only
	// multi-letter aromatic symbols.
	if p.pos >= len(p.in) {
		return p.errf(start, "unterminated bracket atom")
	}
	c := p.in[p.pos]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		p.pos++
		if p.pos < len(p.in) && p.in[p.pos] >= 'a' && p.in[p.pos] <= 'z' {
			if _, ok := atomicNumbers[sym+string(p.in[p.pos])]; ok {
				sym += string(p.in[p.pos])
				p.pos++
			}
		}
		if _, ok := atomicNumbers[sym]; !ok {
			return p.errf(start, "unknown element %q", sym)
		}
		a.Symbol = sym
	case c >= 'a' && c <= 'z':
		sym := string(c)
		p.pos++
		if p.pos < len(p.in) && (sym == "s" || sym == "a") && p.in[p.pos] == 'e' ||
			p.pos < len(p.in) && sym == "a" && p.in[p.pos] == 's' {
			sym += string(p.in[p.pos])
			p.pos++
		}
		upper := strings.ToUpper(sym[:1]) + sym[1:]
		if !aromaticSubset[upper] {
			return p.errf(start, "element %q cannot be aromatic", upper)
		}
		a.Symbol = upper
		a.Aromatic = true
	default:
		return p.errf(start, "bracket atom missing element symbol")
	}

	// Chirality markers are accepted and ignored.
	for p.pos < len(p.in) && p.in[p.pos] == '@' {
		p.pos++
	}

	// Explicit hydrogen count.
	if p.pos < len(p.in) && p.in[p.pos] == 'H' {
		p.pos++
		n := 1
		if p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			n = 0
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				n = n*10 + int(p.in[p.pos]-'0')
				p.pos++
			}
		}
		a.NumH = n
	}

	// Charge.
	if p.pos < len(p.in) && (p.in[p.pos] == '+' || p.in[p.pos] == '-') {
		sign := 1
		if p.in[p.pos] == '-' {
			sign = -1
		}
		mark := p.in[p.pos]
		count := 0
		for p.pos < len(p.in) && p.in[p.pos] == mark {
			count++
			p.pos++
		}
		if p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			if count != 1 {
				return p.errf(start, "malformed charge")
			}
			count = 0
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				count = count*10 + int(p.in[p.pos]-'0')
				p.pos++
			}
		}
		a.Charge = sign * count
	}

	// Atom map label is accepted and ignored.
	if p.pos < len(p.in) && p.in[p.pos] == ':' {
		p.pos++
		if p.pos >= len(p.in) || !isDigit(p.in[p.pos]) {
			return p.errf(start, "malformed atom map")
		}
		for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			p.pos++
		}
	}

	if p.pos >= len(p.in) || p.in[p.pos] != ']' {
		return p.errf(start, "unterminated bracket atom")
	}
	p.pos++
	p.addAtom(a, true)
	return nil
}

// resolveHydrogens fills NumH for non-bracket atoms once the full graph is
// known. Bracket atoms keep their explicit count (default zero).
func (p *smilesParser) resolveHydrogens() {
	for i := range p.mol.Atoms {
		if !p.bracketed[i] {
			p.mol.Atoms[i].NumH = p.mol.implicitHCount(i)
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
