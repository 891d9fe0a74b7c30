package pmu

import (
	"sync/atomic"
	"unsafe"
)

// pollAttempts bounds every polling loop in the driver. At least 10,000
// iterations is recommended; exceeding it surfaces as Timeout.
const pollAttempts = 10000

// RegisterAccess is the seam the power sequencer, submodules, and QoS
// engine read and write PMU/QoS registers through. The production
// implementation (mmioAccess) maps a real PMU base address; tests use
// mockRegisterAccess (mock_register.go) to assert write ordering without
// touching hardware.
//
// Every Write32/WriteMasked32 call is expected to be immediately visible
// to the next Read32 call by the time it returns — RegisterAccess
// implementors carry the memory-barrier obligation, so callers above
// this interface never need to reason about reordering.
//
// The two write methods are distinct, not interchangeable spellings of
// the same store: Write32 is a plain write, committing every bit of
// value. WriteMasked32 applies the Rockchip write-enable-mask
// convention, committing only the bits named in mask. A RegisterAccess
// that just forwarded WriteMasked32 to Write32(offset, value) would be
// wrong on a mock backend, which must actually decode the convention to
// know which simulated bits changed; real MMIO hardware decodes the
// convention in the register itself; either way the two calls carry
// different meaning and must not be collapsed into one method.
type RegisterAccess interface {
	// Read32 reads the 32-bit word at the given byte offset from the
	// access's base address.
	Read32(offset uint32) uint32
	// Write32 stores the full 32-bit word at the given offset verbatim.
	Write32(offset uint32, value uint32)
	// WriteMasked32 stores value at offset using the write-enable-mask
	// convention: only the bits named in mask are committed.
	WriteMasked32(offset uint32, mask uint32, value uint32)
}

// mmioAccess is the production RegisterAccess backed by a real,
// host-mapped PMU register window. It uses atomic loads/stores over the
// mapped window rather than plain pointer dereferences: Go's atomic
// package guarantees the load/store is not reordered or coalesced by the
// compiler, which is the software half of the memory-barrier obligation
// (the hardware half — not reordering relative to other MMIO devices —
// is a property of the bus fabric, not of software).
type mmioAccess struct {
	base uintptr
}

// newMMIOAccess wraps an opaque, already-mapped PMU base address. The
// caller (the facade, Driver) is responsible for having obtained a valid,
// writable mapping; physical memory mapping and device-tree discovery of
// that address are out of scope for this package.
func newMMIOAccess(base uintptr) *mmioAccess {
	return &mmioAccess{base: base}
}

func (m *mmioAccess) Read32(offset uint32) uint32 {
	addr := (*uint32)(unsafe.Pointer(m.base + uintptr(offset)))
	return atomic.LoadUint32(addr)
}

func (m *mmioAccess) Write32(offset uint32, value uint32) {
	addr := (*uint32)(unsafe.Pointer(m.base + uintptr(offset)))
	atomic.StoreUint32(addr, value)
}

// WriteMasked32 implements the Rockchip write-enable-mask convention:
// bits 16-31 of the written word are a per-bit enable mask for bits
// 0-15, so only bits named in mask are committed. value's bits outside
// mask are ignored. The PMU hardware decodes this convention itself, so
// on real MMIO the encoded word is simply stored like any other write.
func (m *mmioAccess) WriteMasked32(offset uint32, mask uint32, value uint32) {
	m.Write32(offset, (mask<<16)|(value&mask))
}

// pollUntil polls reg at offset until (value & mask) == want, or until
// pollAttempts is exhausted. Each iteration performs one read followed
// by a call to relax; this package never blocks or sleeps between polls.
func pollUntil(reg RegisterAccess, offset uint32, mask uint32, want uint32) bool {
	for i := 0; i < pollAttempts; i++ {
		if reg.Read32(offset)&mask == want {
			return true
		}
		relax()
	}
	return false
}

// relax is the CPU-relaxation hint a busy-wait loop issues each
// iteration. On a real bare-metal target this would be a WFE/YIELD
// instruction; in portable Go it does nothing. The timeout math does not
// depend on it (pollAttempts is unaffected by how long each iteration
// takes).
func relax() {
	// intentionally empty: a true low-power wait is target-specific and
	// out of scope here; the hook exists so a target-specific build can
	// replace it without touching poll logic.
}
