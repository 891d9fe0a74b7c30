package pmu

import "testing"

func TestWriteMasked32(t *testing.T) {
	reg := newMockRegisterAccess()
	reg.WriteMasked32(0x10, 0x3, 0x1)
	if got := reg.Read32(0x10); got != 0x1 {
		t.Errorf("expected register to read 0x1, got %#x", got)
	}
	if len(reg.writes) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(reg.writes))
	}
	if want := uint32(0x3)<<16 | 0x1; reg.writes[0].Value != want {
		t.Errorf("expected write value %#x, got %#x", want, reg.writes[0].Value)
	}
}

func TestWriteMasked32IgnoresBitsOutsideMask(t *testing.T) {
	reg := newMockRegisterAccess()
	reg.setRegister(0x10, 0xf)
	reg.WriteMasked32(0x10, 0x1, 0x1)
	if got := reg.Read32(0x10); got != 0xf {
		t.Errorf("expected unmasked bits to survive, got %#x", got)
	}
}

func TestWrite32StoresPlainValueVerbatim(t *testing.T) {
	reg := newMockRegisterAccess()
	reg.Write32(0x10, 0x7)
	if got := reg.Read32(0x10); got != 0x7 {
		t.Errorf("expected register to read 0x7, got %#x", got)
	}
	if len(reg.writes) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(reg.writes))
	}
	if reg.writes[0].Value != 0x7 {
		t.Errorf("expected recorded write value 0x7, got %#x", reg.writes[0].Value)
	}
}

func TestPollUntilSucceeds(t *testing.T) {
	reg := newMockRegisterAccess()
	reg.setRegister(0x20, 0x4)
	if !pollUntil(reg, 0x20, 0x4, 0x4) {
		t.Errorf("expected pollUntil to succeed when the value already matches")
	}
}

func TestPollUntilTimesOut(t *testing.T) {
	reg := newMockRegisterAccess()
	if pollUntil(reg, 0x20, 0x4, 0x4) {
		t.Errorf("expected pollUntil to fail when the value never matches")
	}
}
