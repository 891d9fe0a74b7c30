package pmu

// sequencer drives the ordered power-on/power-off sub-steps for a single
// domain against its chip variant's register layout and the shared QoS
// shadow engine.
type sequencer struct {
	reg    RegisterAccess
	layout *RegisterLayout
	qos    *qosEngine
}

func newSequencer(reg RegisterAccess, layout *RegisterLayout, qos *qosEngine) *sequencer {
	return &sequencer{reg: reg, layout: layout, qos: qos}
}

// powerOn runs a domain's power-on sub-steps in a fixed order: memory
// power, bus-idle cancel, main power, repair wait, QoS restore. Each
// sub-step is idempotent against hardware already in the target state,
// so calling powerOn on an already-powered domain re-polls but does not
// fail. Id 0 (the always-on root domain) is a no-op target.
func (s *sequencer) powerOn(d *Descriptor) *Error {
	if d.ID == 0 {
		return nil
	}
	if err := memoryPowerOn(s.reg, s.layout, d); err != nil {
		return err
	}
	if err := busIdleCancel(s.reg, s.layout, d); err != nil {
		return err
	}
	if err := s.mainPowerOn(d); err != nil {
		return err
	}
	if err := s.repairWait(d); err != nil {
		return err
	}
	s.qos.restore(s.reg, d)
	return nil
}

// powerOff runs a domain's power-off sub-steps in a fixed order: QoS
// save, bus-idle assert, main power off, memory power off. QoS save
// happens first so the last-known-good configuration is captured before
// any register state changes. Id 0 is a no-op target, as for powerOn.
func (s *sequencer) powerOff(d *Descriptor) *Error {
	if d.ID == 0 {
		return nil
	}
	s.qos.save(s.reg, d)
	if err := busIdleAssert(s.reg, s.layout, d); err != nil {
		return err
	}
	if err := s.mainPowerOff(d); err != nil {
		return err
	}
	if err := memoryPowerOff(s.reg, s.layout, d); err != nil {
		return err
	}
	return nil
}

// mainPowerOn requests main power and polls PwrState, skipping the
// request entirely for an always-on domain.
func (s *sequencer) mainPowerOn(d *Descriptor) *Error {
	return s.mainPowerTransition(d, false)
}

// mainPowerOff requests main power removal and polls PwrState.
func (s *sequencer) mainPowerOff(d *Descriptor) *Error {
	return s.mainPowerTransition(d, true)
}

func (s *sequencer) mainPowerTransition(d *Descriptor, off bool) *Error {
	if !d.HasMainPower() {
		return nil
	}
	mask := uint32(1) << uint(d.PwrBit)
	want := uint32(0)
	if off {
		want = mask
	}
	s.reg.WriteMasked32(s.layout.PwrReq, mask, want)
	if !pollUntil(s.reg, s.layout.PwrState, mask, want) {
		return newError(Timeout, d.ID, StageMainPower, "pwr_state poll")
	}
	return nil
}

// repairWait waits for the domain's memory-repair completion bit, a
// post-power-on-only step skipped entirely when the domain has no repair
// bit. A domain that does declare a repair bit on a variant whose layout
// has no repair-status register at all (RK3568) cannot honor the wait,
// and reports Unsupported rather than silently skipping it.
func (s *sequencer) repairWait(d *Descriptor) *Error {
	if !d.HasRepair() {
		return nil
	}
	if !s.layout.hasRepairRegister() {
		return newError(Unsupported, d.ID, StageRepairWait, "repair_status register absent on this variant")
	}
	mask := uint32(1) << uint(d.RepairBit)
	if !pollUntil(s.reg, s.layout.RepairStatus, mask, mask) {
		return newError(Timeout, d.ID, StageRepairWait, "repair_status poll")
	}
	return nil
}
