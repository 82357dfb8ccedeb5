package chem

import (
	"bytes"
	"encoding/binary"
)

// Binary molecule encoding.
//
// Layout: 4-byte magic "ORDM", one version byte, then varint-coded fields:
// atom count, per-atom (atomic number, isotope, zigzag charge, hydrogen
// count, flags byte), bond count, per-bond (endpoint indexes, order byte).
// The encoding preserves the full graph, so decode followed by
// CanonicalSmiles always reproduces the canonical form of the source.
const (
	molMagic   = "ORDM"
	molVersion = 0x01
)

// ToBinary serializes the molecule. The output depends on atom order, so it
// is a faithful container, not a canonical form; compare molecules through
// CanonicalSmiles instead.
func (m *Mol) ToBinary() []byte {
	var buf bytes.Buffer
	buf.WriteString(molMagic)
	buf.WriteByte(molVersion)

	var tmp [binary.MaxVarintLen64]byte
	writeUvarint := func(v uint64) {
		n := binary.PutUvarint(tmp[:], v)
		buf.Write(tmp[:n])
	}

	writeUvarint(uint64(len(m.Atoms)))
	for _, a := range m.Atoms {
		writeUvarint(uint64(atomicNumbers[a.Symbol]))
		writeUvarint(uint64(a.Isotope))
		writeUvarint(zigzag(a.Charge))
		writeUvarint(uint64(a.NumH))
		var flags byte
		if a.Aromatic {
			flags |= 1
		}
		buf.WriteByte(flags)
	}
	writeUvarint(uint64(len(m.Bonds)))
	for _, b := range m.Bonds {
		writeUvarint(uint64(b.A))
		writeUvarint(uint64(b.B))
		buf.WriteByte(byte(b.Order))
	}
	return buf.Bytes()
}

// MolFromBinary deserializes a molecule produced by ToBinary.
func MolFromBinary(data []byte) (*Mol, error) {
	if len(data) < len(molMagic)+1 || string(data[:len(molMagic)]) != molMagic {
		return nil, decodeErrorf("missing magic")
	}
	if v := data[len(molMagic)]; v != molVersion {
		return nil, decodeErrorf("unsupported version %d", v)
	}
	r := bytes.NewReader(data[len(molMagic)+1:])

	readUvarint := func(what string) (uint64, error) {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return 0, decodeErrorf("truncated %s", what)
		}
		return v, nil
	}

	natoms, err := readUvarint("atom count")
	if err != nil {
		return nil, err
	}
	if natoms > uint64(len(data)) {
		return nil, decodeErrorf("atom count %d exceeds payload", natoms)
	}
	m := &Mol{Atoms: make([]Atom, natoms)}
	for i := range m.Atoms {
		z, err := readUvarint("atomic number")
		if err != nil {
			return nil, err
		}
		sym, ok := elementSymbols[int(z)]
		if !ok {
			return nil, decodeErrorf("unknown atomic number %d", z)
		}
		iso, err := readUvarint("isotope")
		if err != nil {
			return nil, err
		}
		zq, err := readUvarint("charge")
		if err != nil {
			return nil, err
		}
		numH, err := readUvarint("hydrogen count")
		if err != nil {
			return nil, err
		}
		flags, err := r.ReadByte()
		if err != nil {
			return nil, decodeErrorf("truncated atom flags")
		}
		m.Atoms[i] = Atom{
			Symbol:   sym,
			Isotope:  int(iso),
			Charge:   unzigzag(zq),
			NumH:     int(numH),
			Aromatic: flags&1 != 0,
		}
	}

	nbonds, err := readUvarint("bond count")
	if err != nil {
		return nil, err
	}
	if nbonds > uint64(len(data)) {
		return nil, decodeErrorf("bond count %d exceeds payload", nbonds)
	}
	m.Bonds = make([]Bond, nbonds)
	for i := range m.Bonds {
		a, err := readUvarint("bond endpoint")
		if err != nil {
			return nil, err
		}
		b, err := readUvarint("bond endpoint")
		if err != nil {
			return nil, err
		}
		if a >= natoms || b >= natoms || a == b {
			return nil, decodeErrorf("bond %d references invalid atoms %d-%d", i, a, b)
		}
		order, err := r.ReadByte()
		if err != nil {
			return nil, decodeErrorf("truncated bond order")
		}
		if order < BondSingle || order > BondAromatic {
			return nil, decodeErrorf("bond %d has invalid order %d", i, order)
		}
		m.Bonds[i] = Bond{A: int(a), B: int(b), Order: int(order)}
	}
	if r.Len() != 0 {
		return nil, decodeErrorf("%d trailing bytes", r.Len())
	}
	return m, nil
}

func zigzag(v int) uint64 {
	x := int64(v)
	return uint64((x << 1) ^ (x >> 63))
}

func unzigzag(v uint64) int {
	return int(int64(v>>1) ^ -int64(v&1))
}
