package pmu

// busIdleAssert requests bus idle for d: writes 1 to the request bit, then
// polls the ack bit to 1, then the state bit to 1. Polling of ack and
// state is sequential, not interleaved.
func busIdleAssert(reg RegisterAccess, layout *RegisterLayout, d *Descriptor) *Error {
	return busIdleTransition(reg, layout, d, true)
}

// busIdleCancel cancels a bus-idle request for d: writes 0 to the
// request bit, then polls ack to 0, then state to 0.
func busIdleCancel(reg RegisterAccess, layout *RegisterLayout, d *Descriptor) *Error {
	return busIdleTransition(reg, layout, d, false)
}

func busIdleTransition(reg RegisterAccess, layout *RegisterLayout, d *Descriptor, idle bool) *Error {
	if d.ReqBit == NoBit {
		return nil
	}
	mask := uint32(1) << uint(d.ReqBit)
	want := uint32(0)
	if idle {
		want = mask
	}

	reg.WriteMasked32(layout.BusIdleReq, mask, want)

	if !pollUntil(reg, layout.BusIdleAck, mask, want) {
		return newError(Timeout, d.ID, StageBusIdle, "bus_idle_ack poll")
	}
	if !pollUntil(reg, layout.BusIdleState, mask, want) {
		return newError(Timeout, d.ID, StageBusIdle, "bus_idle_state poll")
	}
	return nil
}
