package pmu

// DomainID identifies a power domain within a chip variant: a small
// non-negative integer, unique within the variant's descriptor table.
// Identifiers are dense but need not be contiguous. Id 0 is reserved for
// an always-on root domain; the sequencer treats it as a no-op target.
type DomainID int

// NoBit is the sentinel used in place of a bit index for a descriptor
// field the domain does not use (e.g. a domain with no bus-idle gate has
// ReqBit == NoBit).
const NoBit = -1

// NoParent is the sentinel used in Descriptor.Parent for a domain with no
// parent dependency.
const NoParent DomainID = -1

// Descriptor is the static, read-only per-chip record describing one
// power domain's bit positions in the PMU register set. Descriptors are
// built once, at table-construction time, and never mutated afterward:
// MemBits and QoSPorts are never resized after construction.
type Descriptor struct {
	ID DomainID

	// Name is a human-readable label for logs; not part of the identity
	// of the domain (two chips may reuse a name for unrelated domains).
	Name string

	// PwrBit is the bit index (0-31) of this domain in the PMU's
	// power-on-request / power-state register pair. NoBit means the
	// domain has no software-controlled main power (always on).
	PwrBit int

	// MemBits is the ordered list of bit indices in the memory-power
	// register pair that this domain's retained SRAM occupies. Empty for
	// domains without controlled memory. Programmed in this order.
	MemBits []int

	// ReqBit is the bit index in the bus-idle-request/ack/state register
	// trio. NoBit means the domain has no bus-idle gate.
	ReqBit int

	// RepairBit is the bit index in the repair-status register. NoBit
	// means no repair wait is required after power-on.
	RepairBit int

	// Parent is the domain that must be active before this one may be
	// powered on (and which may not be powered off while this one is
	// active). NoParent means no dependency.
	Parent DomainID

	// QoSPorts is the ordered list of physical base addresses, each the
	// start of a 5-register QoS block. Empty if the domain has no QoS
	// ports under software control. Maximum 8.
	QoSPorts []uint32
}

// MaxQoSPorts bounds the QoS-port cardinality a descriptor may declare.
const MaxQoSPorts = 8

// HasMainPower reports whether the domain has software-controlled main
// power (as opposed to being always-on).
func (d *Descriptor) HasMainPower() bool { return d.PwrBit != NoBit }

// HasBusIdle reports whether the domain has a bus-idle handshake.
func (d *Descriptor) HasBusIdle() bool { return d.ReqBit != NoBit }

// HasRepair reports whether the domain requires a post-power-on repair
// wait.
func (d *Descriptor) HasRepair() bool { return d.RepairBit != NoBit }

// HasParent reports whether the domain has a parent dependency.
func (d *Descriptor) HasParent() bool { return d.Parent != NoParent }

// HasQoS reports whether the domain has QoS ports to save/restore.
func (d *Descriptor) HasQoS() bool { return len(d.QoSPorts) > 0 }
