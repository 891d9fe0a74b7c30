package pmu

// depManager tracks which domains are believed active and enforces
// parent-before-child / child-before-parent ordering. The
// active set lives only in process memory: it is seeded empty at
// construction and is never re-synchronized against hardware state, so a
// domain powered on outside this package (or before the process started)
// will not be reflected here.
type depManager struct {
	t      *table
	active map[DomainID]bool
}

func newDepManager(t *table) *depManager {
	return &depManager{t: t, active: make(map[DomainID]bool)}
}

// checkPowerOn verifies d's parent, if any, is active before d may be
// powered on. A domain with no
// parent always passes.
func (m *depManager) checkPowerOn(d *Descriptor) *Error {
	if !d.HasParent() {
		return nil
	}
	if !m.active[d.Parent] {
		return newError(DependencyNotMet, d.ID, StageNone, "parent domain is not active")
	}
	return nil
}

// checkPowerOff verifies none of d's children are active before d may be
// powered off.
func (m *depManager) checkPowerOff(d *Descriptor) *Error {
	for _, cid := range m.t.childrenOf(d.ID) {
		if m.active[cid] {
			return newError(DependencyNotMet, d.ID, StageNone, "a child domain is still active")
		}
	}
	return nil
}

// markActive records id as active in the in-memory active set.
func (m *depManager) markActive(id DomainID) {
	m.active[id] = true
}

// markInactive removes id from the in-memory active set.
func (m *depManager) markInactive(id DomainID) {
	delete(m.active, id)
}

// isActive reports whether id is currently believed active.
func (m *depManager) isActive(id DomainID) bool {
	return m.active[id]
}

// activeDomains returns every domain id currently believed active, in
// ascending id order.
func (m *depManager) activeDomains() []DomainID {
	var out []DomainID
	for _, id := range m.t.orderedID {
		if m.active[id] {
			out = append(out, id)
		}
	}
	return out
}
