package pmu

// mockRegisterAccess is an in-memory RegisterAccess used by tests to
// assert write ordering and to simulate hardware that answers a poll
// either immediately (see linkAutoAck) or never.
type mockRegisterAccess struct {
	regs map[uint32]uint32

	// writes records every Write32/WriteMasked32 call in order, for
	// assertions on sub-step ordering (e.g. S1-S6 scenario tests).
	writes []mockWrite

	// autoAck, when set, makes the mock answer poll registers as if
	// hardware had already transitioned: any WriteMasked32 to a *Req
	// register listed in autoAck immediately updates every paired
	// ack/state register to match, so pollUntil succeeds on its first
	// read.
	autoAck map[uint32][]uint32
}

type mockWrite struct {
	Offset uint32
	Value  uint32
}

func newMockRegisterAccess() *mockRegisterAccess {
	return &mockRegisterAccess{
		regs:    make(map[uint32]uint32),
		autoAck: make(map[uint32][]uint32),
	}
}

func (m *mockRegisterAccess) Read32(offset uint32) uint32 {
	return m.regs[offset]
}

// Write32 stores value verbatim, matching the plain-write contract: the
// full word is committed, with no write-enable-mask decoding.
func (m *mockRegisterAccess) Write32(offset uint32, value uint32) {
	m.writes = append(m.writes, mockWrite{Offset: offset, Value: value})
	m.regs[offset] = value
}

// WriteMasked32 decodes the write-enable-mask convention so the mock's
// simulated register state reflects only the bits the caller named in
// mask, matching what real PMU hardware does with the same encoded
// word.
func (m *mockRegisterAccess) WriteMasked32(offset uint32, mask uint32, value uint32) {
	encoded := (mask << 16) | (value & mask)
	m.writes = append(m.writes, mockWrite{Offset: offset, Value: encoded})

	bits := value & mask
	m.regs[offset] = (m.regs[offset] &^ mask) | bits

	for _, pairedOffset := range m.autoAck[offset] {
		m.regs[pairedOffset] = (m.regs[pairedOffset] &^ mask) | bits
	}
}

// linkAutoAck makes writes to reqOffset immediately reflect into
// ackOffset, simulating hardware that acknowledges a request bit
// instantly. Tests that need to exercise Timeout construct a
// mockRegisterAccess without calling this for the offset under test.
// A reqOffset may be linked to more than one ackOffset (e.g. both the
// ack and state registers of a bus-idle handshake).
func (m *mockRegisterAccess) linkAutoAck(reqOffset, ackOffset uint32) {
	m.autoAck[reqOffset] = append(m.autoAck[reqOffset], ackOffset)
}

// setRegister seeds a register's initial value, e.g. to pre-populate a
// QoS port's shadow contents before a save().
func (m *mockRegisterAccess) setRegister(offset uint32, value uint32) {
	m.regs[offset] = value
}
