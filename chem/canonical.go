package chem

import (
	"fmt"
	"sort"
	"strings"
)

// CanonicalSmiles renders the molecule in its canonical notation. Two
// molecules describe the same constitutional structure exactly when their
// canonical strings are equal. The output is independent of input atom order.
func (m *Mol) CanonicalSmiles() string {
	if len(m.Atoms) == 0 {
		return ""
	}
	ranks := canonicalRanks(m)

	comps := m.components()
	parts := make([]string, 0, len(comps))
	for _, comp := range comps {
		w := &canonWriter{m: m, ranks: ranks, inComponent: comp}
		parts = append(parts, w.render())
	}
	sort.Strings(parts)
	return strings.Join(parts, ".")
}

// Canonicalize parses a SMILES string and returns its canonical form.
func Canonicalize(smiles string) (string, error) {
	m, err := ParseSmiles(smiles)
	if err != nil {
		return "", err
	}
	return m.CanonicalSmiles(), nil
}

// canonicalRanks assigns every atom a unique rank using iterative invariant
// refinement. Ties after refinement are broken by lowest atom index, then the
// refinement reruns, so symmetric atoms still receive a stable order.
func canonicalRanks(m *Mol) []int {
	n := len(m.Atoms)
	keys := make([][]int, n)
	for i, a := range m.Atoms {
		arom := 0
		if a.Aromatic {
			arom = 1
		}
		keys[i] = []int{
			len(m.neighbors()[i]),
			atomicNumbers[a.Symbol],
			a.Charge,
			a.NumH,
			arom,
			a.Isotope,
		}
	}
	ranks := rankKeys(keys)
	ranks = refineRanks(m, ranks)

	for countDistinct(ranks) < n {
		// Smallest tied class, lowest atom index wins the tie.
		counts := map[int]int{}
		for _, r := range ranks {
			counts[r]++
		}
		tiedRank := -1
		for r, c := range counts {
			if c > 1 && (tiedRank < 0 || r < tiedRank) {
				tiedRank = r
			}
		}
		tied := -1
		for i, r := range ranks {
			if r == tiedRank {
				tied = i
				break
			}
		}
		for i := range ranks {
			ranks[i] *= 2
		}
		ranks[tied]--
		ranks = refineRanks(m, ranks)
	}
	return ranks
}

func refineRanks(m *Mol, ranks []int) []int {
	n := len(m.Atoms)
	adj := m.neighbors()
	for {
		keys := make([][]int, n)
		for i := range keys {
			key := []int{ranks[i]}
			nb := make([]int, 0, len(adj[i]))
			for _, bi := range adj[i] {
				nb = append(nb, ranks[m.other(bi, i)])
			}
			sort.Ints(nb)
			keys[i] = append(key, nb...)
		}
		next := rankKeys(keys)
		if equalInts(next, ranks) {
			return next
		}
		ranks = next
	}
}

// rankKeys assigns dense ranks (0-based) by lexicographic order of the keys.
func rankKeys(keys [][]int) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return lessInts(keys[idx[a]], keys[idx[b]])
	})
	ranks := make([]int, len(keys))
	rank := 0
	for pos, i := range idx {
		if pos > 0 && lessInts(keys[idx[pos-1]], keys[i]) {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}

func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countDistinct(ranks []int) int {
	seen := map[int]bool{}
	for _, r := range ranks {
		seen[r] = true
	}
	return len(seen)
}

// canonWriter emits one connected component as SMILES, traversing atoms in
// canonical rank order with lazily assigned ring-closure digits.
type canonWriter struct {
	m           *Mol
	ranks       []int
	inComponent []int

	sb      strings.Builder
	visited []bool
	treeB   []bool
	backAt  [][]int // per atom, back-edge bond indexes in emission order

	digits    map[int]int // back-edge bond index -> assigned digit
	digitBusy [100]bool
}

func (w *canonWriter) render() string {
	n := len(w.m.Atoms)
	w.visited = make([]bool, n)
	w.treeB = make([]bool, len(w.m.Bonds))
	w.backAt = make([][]int, n)
	w.digits = map[int]int{}

	root := w.inComponent[0]
	for _, ai := range w.inComponent {
		if w.ranks[ai] < w.ranks[root] {
			root = ai
		}
	}
	w.classify(root, -1)
	for i := range w.visited {
		w.visited[i] = false
	}
	w.emit(root, -1)
	return w.sb.String()
}

// classify marks tree bonds and records back edges at both endpoints, in the
// order the emitting pass will encounter them.
func (w *canonWriter) classify(ai, fromBond int) {
	w.visited[ai] = true
	for _, bi := range w.sortedBonds(ai) {
		if bi == fromBond {
			continue
		}
		nb := w.m.other(bi, ai)
		if !w.visited[nb] {
			w.treeB[bi] = true
			w.classify(nb, bi)
		} else if !w.treeB[bi] && !containsInt(w.backAt[nb], bi) {
			w.backAt[ai] = append(w.backAt[ai], bi)
			w.backAt[nb] = append(w.backAt[nb], bi)
		}
	}
}

func (w *canonWriter) emit(ai, fromBond int) {
	w.visited[ai] = true
	if fromBond >= 0 {
		w.writeBondSymbol(fromBond)
	}
	w.writeAtom(ai)
	for _, bi := range w.backAt[ai] {
		d, open := w.digits[bi]
		if !open {
			d = w.claimDigit()
			w.digits[bi] = d
			w.writeBondSymbol(bi)
		} else {
			w.digitBusy[d] = false
		}
		if d < 10 {
			fmt.Fprintf(&w.sb, "%d", d)
		} else {
			fmt.Fprintf(&w.sb, "%%%02d", d)
		}
	}

	var children []int
	for _, bi := range w.sortedBonds(ai) {
		if w.treeB[bi] && !w.visited[w.m.other(bi, ai)] {
			children = append(children, bi)
		}
	}
	for i, bi := range children {
		nb := w.m.other(bi, ai)
		if i < len(children)-1 {
			w.sb.WriteByte('(')
			w.emit(nb, bi)
			w.sb.WriteByte(')')
		} else {
			w.emit(nb, bi)
		}
	}
}

// sortedBonds orders the bonds at an atom by the canonical rank of the far
// atom. Ranks are unique, so the order is total.
func (w *canonWriter) sortedBonds(ai int) []int {
	bonds := append([]int(nil), w.m.neighbors()[ai]...)
	sort.Slice(bonds, func(a, b int) bool {
		return w.ranks[w.m.other(bonds[a], ai)] < w.ranks[w.m.other(bonds[b], ai)]
	})
	return bonds
}

// writeBondSymbol emits the bond token, omitting it where the default bond of
// the two atoms already matches.
func (w *canonWriter) writeBondSymbol(bi int) {
	b := w.m.Bonds[bi]
	def := defaultBondOrder(w.m.Atoms[b.A], w.m.Atoms[b.B])
	if b.Order == def {
		return
	}
	switch b.Order {
	case BondSingle:
		w.sb.WriteByte('-')
	case BondDouble:
		w.sb.WriteByte('=')
	case BondTriple:
		w.sb.WriteByte('#')
	case BondAromatic:
		w.sb.WriteByte(':')
	}
}

func (w *canonWriter) writeAtom(ai int) {
	a := w.m.Atoms[ai]
	sym := a.Symbol
	if a.Aromatic {
		sym = strings.ToLower(sym)
	}
	if !w.needsBracket(ai) {
		w.sb.WriteString(sym)
		return
	}
	w.sb.WriteByte('[')
	if a.Isotope != 0 {
		fmt.Fprintf(&w.sb, "%d", a.Isotope)
	}
	w.sb.WriteString(sym)
	if a.NumH == 1 {
		w.sb.WriteByte('H')
	} else if a.NumH > 1 {
		fmt.Fprintf(&w.sb, "H%d", a.NumH)
	}
	switch {
	case a.Charge == 1:
		w.sb.WriteByte('+')
	case a.Charge == -1:
		w.sb.WriteByte('-')
	case a.Charge > 1:
		fmt.Fprintf(&w.sb, "+%d", a.Charge)
	case a.Charge < -1:
		fmt.Fprintf(&w.sb, "-%d", -a.Charge)
	}
	w.sb.WriteByte(']')
}

// needsBracket reports whether the atom cannot be written bare: outside the
// organic subset, charged, isotopic, aromatic outside the aromatic organic
// set, or carrying a hydrogen count a bare atom would not reproduce.
func (w *canonWriter) needsBracket(ai int) bool {
	a := w.m.Atoms[ai]
	if a.Isotope != 0 || a.Charge != 0 {
		return true
	}
	if !organicSubset[a.Symbol] {
		return true
	}
	if a.Aromatic {
		switch a.Symbol {
		case "B", "C", "N", "O", "P", "S":
		default:
			return true
		}
	}
	return a.NumH != w.m.implicitHCount(ai)
}

func (w *canonWriter) claimDigit() int {
	for d := 1; d < len(w.digitBusy); d++ {
		if !w.digitBusy[d] {
			w.digitBusy[d] = true
			return d
		}
	}
	// 99 simultaneously open ring bonds exceeds any realistic molecule.
	panic("chem: out of ring closure digits")
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
