package pmu

import "testing"

func fullLayout() *RegisterLayout {
	return &RegisterLayout{
		PwrReq:       0x00,
		PwrState:     0x04,
		MemReq:       0x08,
		MemState:     0x0c,
		BusIdleReq:   0x10,
		BusIdleAck:   0x14,
		BusIdleState: 0x18,
		RepairStatus: 0x1c,
	}
}

func linkedMock(layout *RegisterLayout) *mockRegisterAccess {
	reg := newMockRegisterAccess()
	reg.linkAutoAck(layout.PwrReq, layout.PwrState)
	reg.linkAutoAck(layout.MemReq, layout.MemState)
	reg.linkAutoAck(layout.BusIdleReq, layout.BusIdleAck)
	reg.linkAutoAck(layout.BusIdleReq, layout.BusIdleState)
	return reg
}

func TestSequencerPowerOnOrdersSubSteps(t *testing.T) {
	layout := fullLayout()
	reg := linkedMock(layout)
	reg.setRegister(layout.RepairStatus, 1<<0)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{
		ID: 1, Name: "full",
		PwrBit: 0, MemBits: []int{0}, ReqBit: 0, RepairBit: 0,
		QoSPorts: []uint32{0x1000},
	}

	if err := s.powerOn(d); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	var touched []uint32
	for _, w := range reg.writes {
		touched = append(touched, w.Offset)
	}
	order := map[uint32]int{}
	for i, o := range touched {
		if _, ok := order[o]; !ok {
			order[o] = i
		}
	}
	if order[layout.MemReq] > order[layout.BusIdleReq] {
		t.Errorf("expected memory power before bus-idle cancel")
	}
	if order[layout.BusIdleReq] > order[layout.PwrReq] {
		t.Errorf("expected bus-idle cancel before main power")
	}
}

func TestSequencerPowerOnSkipsRepairWaitWithoutRepairBit(t *testing.T) {
	layout := fullLayout()
	reg := linkedMock(layout)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{ID: 1, Name: "norepair", PwrBit: 0, ReqBit: NoBit, RepairBit: NoBit}
	if err := s.powerOn(d); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestSequencerPowerOnTimesOutOnRepairWait(t *testing.T) {
	layout := fullLayout()
	reg := linkedMock(layout)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{ID: 1, Name: "repair", PwrBit: 0, ReqBit: NoBit, RepairBit: 2}
	err := s.powerOn(d)
	if err == nil || err.Kind != Timeout || err.Stage != StageRepairWait {
		t.Fatalf("expected Timeout at StageRepairWait, got %v", err)
	}
}

func TestSequencerPowerOnReportsUnsupportedWhenRepairRegisterAbsent(t *testing.T) {
	layout := &RegisterLayout{
		PwrReq:       0x00,
		PwrState:     0x04,
		BusIdleReq:   registerAbsent,
		BusIdleAck:   registerAbsent,
		BusIdleState: registerAbsent,
		RepairStatus: registerAbsent,
	}
	reg := linkedMock(layout)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{ID: 1, Name: "norepairreg", PwrBit: 0, ReqBit: NoBit, RepairBit: 0}
	err := s.powerOn(d)
	if err == nil || err.Kind != Unsupported || err.Stage != StageRepairWait {
		t.Fatalf("expected Unsupported at StageRepairWait, got %v", err)
	}
}

func TestSequencerPowerOffSavesQoSBeforeGating(t *testing.T) {
	layout := fullLayout()
	reg := linkedMock(layout)
	reg.setRegister(0x1000+qosOffsetPriority, 5)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{
		ID: 1, Name: "full",
		PwrBit: 0, MemBits: []int{0}, ReqBit: 0, RepairBit: NoBit,
		QoSPorts: []uint32{0x1000},
	}

	if err := s.powerOff(d); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !q.hasShadow(d.ID) {
		t.Errorf("expected a QoS shadow to be captured during power-off")
	}
}

func TestSequencerSecondPowerOffDoesNotClobberShadow(t *testing.T) {
	layout := fullLayout()
	reg := linkedMock(layout)
	reg.setRegister(0x1000+qosOffsetPriority, 5)
	q := newQoSEngine()
	s := newSequencer(reg, layout, q)

	d := &Descriptor{
		ID: 1, Name: "full",
		PwrBit: 0, ReqBit: 0, RepairBit: NoBit,
		QoSPorts: []uint32{0x1000},
	}

	if err := s.powerOff(d); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	reg.setRegister(0x1000+qosOffsetPriority, 999)
	if err := s.powerOff(d); err != nil {
		t.Fatalf("expected success on second power-off, got %v", err)
	}

	reg.setRegister(0x1000+qosOffsetPriority, 0)
	s.qos.restore(reg, d)
	if got := reg.Read32(0x1000 + qosOffsetPriority); got != 5 {
		t.Errorf("expected the original snapshot (5) to survive a repeated power_off, got %d", got)
	}
}
