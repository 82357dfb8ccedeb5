package chem

import (
	"fmt"
	"sort"
	"strings"
)

// Atom is a single heavy atom in a molecule. Hydrogens are not graph nodes;
// they are carried as a per-atom count (NumH).
type Atom struct {
	// Symbol is the element symbol, e.g. "C", "Cl".
	Symbol string
	// Isotope is the mass number; 0 means unspecified.
	Isotope int
	// Charge is the formal charge.
	Charge int
	// Aromatic marks atoms written lowercase in SMILES.
	Aromatic bool
	// NumH is the resolved hydrogen count. It is computed for organic-subset
	// atoms without brackets and taken verbatim from bracket atoms.
	NumH int
}

// Bond orders. Aromatic bonds keep their own order value so canonical output
// can distinguish kekulized and aromatic forms.
const (
	BondSingle   = 1
	BondDouble   = 2
	BondTriple   = 3
	BondAromatic = 4
)

// Bond connects two atoms by index. A < B is not required; bonds are
// undirected.
type Bond struct {
	A, B  int
	Order int
}

// Mol is an immutable-by-convention molecular graph. Callers should treat a
// parsed Mol as read-only; all derived operations return new values.
type Mol struct {
	Atoms []Atom
	Bonds []Bond

	// adjacency is built lazily by neighbors().
	adjacency [][]int
}

// NumAtoms returns the heavy-atom count.
func (m *Mol) NumAtoms() int { return len(m.Atoms) }

// NumBonds returns the bond count.
func (m *Mol) NumBonds() int { return len(m.Bonds) }

// neighbors returns, for every atom, the indexes of bonds incident to it.
func (m *Mol) neighbors() [][]int {
	if m.adjacency != nil {
		return m.adjacency
	}
	adj := make([][]int, len(m.Atoms))
	for bi, b := range m.Bonds {
		adj[b.A] = append(adj[b.A], bi)
		adj[b.B] = append(adj[b.B], bi)
	}
	m.adjacency = adj
	return adj
}

// other returns the atom on the far side of bond bi from atom ai.
func (m *Mol) other(bi, ai int) int {
	b := m.Bonds[bi]
	if b.A == ai {
		return b.B
	}
	return b.A
}

// bondOrderSum returns the valence contribution of all bonds at atom ai.
// Aromatic bonds contribute 1 each; aromatic atoms get one extra unit to
// account for the delocalized system.
func (m *Mol) bondOrderSum(ai int) int {
	sum := 0
	for _, bi := range m.neighbors()[ai] {
		o := m.Bonds[bi].Order
		if o == BondAromatic {
			o = 1
		}
		sum += o
	}
	if m.Atoms[ai].Aromatic {
		sum++
	}
	return sum
}

// implicitHCount infers the hydrogen count for an organic-subset atom from
// its bond order sum and the element's normal valences. Atoms outside the
// organic subset get zero implicit hydrogens.
func (m *Mol) implicitHCount(ai int) int {
	a := m.Atoms[ai]
	if a.Charge != 0 {
		return 0
	}
	valences, ok := normalValences[a.Symbol]
	if !ok {
		return 0
	}
	sum := m.bondOrderSum(ai)
	for _, v := range valences {
		if sum <= v {
			return v - sum
		}
	}
	return 0
}

// Formula returns the molecular formula in Hill order: carbon first, hydrogen
// second, then remaining elements alphabetically. Disconnected components are
// counted together.
func (m *Mol) Formula() string {
	counts := map[string]int{}
	for i, a := range m.Atoms {
		counts[a.Symbol]++
		counts["H"] += m.Atoms[i].NumH
	}
	if counts["H"] == 0 {
		delete(counts, "H")
	}

	var sb strings.Builder
	write := func(sym string) {
		n, ok := counts[sym]
		if !ok || n == 0 {
			return
		}
		sb.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
		delete(counts, sym)
	}

	if counts["C"] > 0 {
		write("C")
		write("H")
	}
	rest := make([]string, 0, len(counts))
	for sym := range counts {
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	for _, sym := range rest {
		write(sym)
	}
	return sb.String()
}

// MolecularWeight returns the average molecular weight in g/mol, including
// implicit hydrogens. Unknown elements contribute zero.
func (m *Mol) MolecularWeight() float64 {
	var w float64
	for i, a := range m.Atoms {
		w += atomicWeights[a.Symbol]
		w += float64(m.Atoms[i].NumH) * atomicWeights["H"]
	}
	return w
}

// components partitions atoms into connected components, each a sorted slice
// of atom indexes.
func (m *Mol) components() [][]int {
	seen := make([]bool, len(m.Atoms))
	adj := m.neighbors()
	var out [][]int
	for start := range m.Atoms {
		if seen[start] {
			continue
		}
		comp := []int{}
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			ai := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, ai)
			for _, bi := range adj[ai] {
				n := m.other(bi, ai)
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}
	return out
}
