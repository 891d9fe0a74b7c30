package pmu

import "sort"

// ChipVariant selects which descriptor table and register-layout variant
// is active. The enumeration is closed: RK3568 and RK3588 are the only
// supported members.
type ChipVariant int

const (
	RK3568 ChipVariant = iota
	RK3588
)

func (c ChipVariant) String() string {
	switch c {
	case RK3568:
		return "RK3568"
	case RK3588:
		return "RK3588"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a recognized chip variant. The facade
// validates this at construction.
func (c ChipVariant) Valid() bool {
	return c == RK3568 || c == RK3588
}

// RegisterLayout fixes the PMU register offsets for one chip variant:
// which offsets the core touches for main power, memory power, bus idle,
// and repair status. An offset of registerAbsent means the variant's
// PMU has no such register at all (distinct from a domain simply not
// using a bit in a register that does exist).
type RegisterLayout struct {
	PwrReq   uint32
	PwrState uint32

	MemReq   uint32
	MemState uint32

	BusIdleReq   uint32
	BusIdleAck   uint32
	BusIdleState uint32

	// RepairStatus is registerAbsent on chips whose PMU has no
	// memory-repair status register at all (e.g. RK3568).
	RepairStatus uint32
}

// registerAbsent marks a RegisterLayout field as "this chip variant has
// no such register", distinct from a domain descriptor's NoBit (which
// says "this domain doesn't use a bit of a register that does exist").
const registerAbsent = ^uint32(0)

// hasRepairRegister reports whether the variant's PMU exposes a
// repair-status register at all.
func (l *RegisterLayout) hasRepairRegister() bool {
	return l.RepairStatus != registerAbsent
}

// table bundles one chip variant's register layout with its domain
// descriptor table, looked up once at driver construction.
type table struct {
	layout    RegisterLayout
	domains   map[DomainID]*Descriptor
	orderedID []DomainID // ascending, for deterministic iteration
}

func newTable(layout RegisterLayout, descriptors []*Descriptor) *table {
	t := &table{
		layout:  layout,
		domains: make(map[DomainID]*Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		t.domains[d.ID] = d
		t.orderedID = append(t.orderedID, d.ID)
	}
	sort.Slice(t.orderedID, func(i, j int) bool { return t.orderedID[i] < t.orderedID[j] })
	return t
}

// lookup returns the descriptor for id, or InvalidDomain.
func (t *table) lookup(id DomainID) (*Descriptor, *Error) {
	d, ok := t.domains[id]
	if !ok {
		return nil, newError(InvalidDomain, id, StageNone, "")
	}
	return d, nil
}

// childrenOf returns the ids of every descriptor whose Parent is id, in
// ascending id order. O(N) scan, acceptable since N is small (≤ ~45).
func (t *table) childrenOf(id DomainID) []DomainID {
	var out []DomainID
	for _, cid := range t.orderedID {
		if t.domains[cid].Parent == id {
			out = append(out, cid)
		}
	}
	return out
}

func tableFor(variant ChipVariant) (*table, *Error) {
	switch variant {
	case RK3568:
		return rk3568Table, nil
	case RK3588:
		return rk3588Table, nil
	default:
		return nil, newError(Unsupported, 0, StageNone, "unrecognized chip variant")
	}
}
