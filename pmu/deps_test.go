package pmu

import "testing"

func buildDepTestTable() *table {
	return newTable(RegisterLayout{}, []*Descriptor{
		{ID: 1, Name: "parent", Parent: NoParent},
		{ID: 2, Name: "child", Parent: 1},
		{ID: 3, Name: "grandchild", Parent: 2},
	})
}

func TestDepManagerCheckPowerOnRequiresParentActive(t *testing.T) {
	tbl := buildDepTestTable()
	m := newDepManager(tbl)
	child, _ := tbl.lookup(2)

	if err := m.checkPowerOn(child); err == nil || err.Kind != DependencyNotMet {
		t.Fatalf("expected DependencyNotMet before parent is active, got %v", err)
	}

	m.markActive(1)
	if err := m.checkPowerOn(child); err != nil {
		t.Errorf("expected success once parent is active, got %v", err)
	}
}

func TestDepManagerCheckPowerOnNoParentAlwaysPasses(t *testing.T) {
	tbl := buildDepTestTable()
	m := newDepManager(tbl)
	parent, _ := tbl.lookup(1)

	if err := m.checkPowerOn(parent); err != nil {
		t.Errorf("expected success for a domain with no parent, got %v", err)
	}
}

func TestDepManagerCheckPowerOffRequiresChildrenInactive(t *testing.T) {
	tbl := buildDepTestTable()
	m := newDepManager(tbl)
	parent, _ := tbl.lookup(1)

	m.markActive(1)
	m.markActive(2)

	if err := m.checkPowerOff(parent); err == nil || err.Kind != DependencyNotMet {
		t.Fatalf("expected DependencyNotMet while a child is active, got %v", err)
	}

	m.markInactive(2)
	if err := m.checkPowerOff(parent); err != nil {
		t.Errorf("expected success once child is inactive, got %v", err)
	}
}

func TestDepManagerActiveDomainsAscending(t *testing.T) {
	tbl := buildDepTestTable()
	m := newDepManager(tbl)

	m.markActive(3)
	m.markActive(1)
	m.markActive(2)

	got := m.activeDomains()
	want := []DomainID{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected ascending order %v, got %v", want, got)
		}
	}
}
