package pmu

// QoS port register offsets, relative to a port's base address.
const (
	qosOffsetPriority   = 0x08
	qosOffsetMode       = 0x0c
	qosOffsetBandwidth  = 0x10
	qosOffsetSaturation = 0x14
	qosOffsetExtControl = 0x18
)

// qosTuple is one port's saved QoS configuration.
type qosTuple struct {
	Priority    uint32
	Mode        uint32
	Bandwidth   uint32
	Saturation  uint32
	ExtControl  uint32
}

// qosEngine holds the per-domain QoS shadow: a dynamic mapping from
// domain id to an ordered vector of port tuples, absent when no
// snapshot is held.
type qosEngine struct {
	shadows map[DomainID][]qosTuple
}

func newQoSEngine() *qosEngine {
	return &qosEngine{shadows: make(map[DomainID][]qosTuple)}
}

// save snapshots every QoS port of d into the shadow, unless a shadow
// already exists for d.
func (q *qosEngine) save(reg RegisterAccess, d *Descriptor) {
	if len(d.QoSPorts) == 0 {
		return
	}
	if _, ok := q.shadows[d.ID]; ok {
		return
	}
	tuples := make([]qosTuple, len(d.QoSPorts))
	for i, base := range d.QoSPorts {
		tuples[i] = qosTuple{
			Priority:   reg.Read32(base + qosOffsetPriority),
			Mode:       reg.Read32(base + qosOffsetMode),
			Bandwidth:  reg.Read32(base + qosOffsetBandwidth),
			Saturation: reg.Read32(base + qosOffsetSaturation),
			ExtControl: reg.Read32(base + qosOffsetExtControl),
		}
	}
	q.shadows[d.ID] = tuples
}

// restore reprograms every QoS port of d from its shadow, in port order,
// writing priority, mode, bandwidth, saturation, extcontrol per port,
// then discards the shadow. A no-op if no shadow is held for d.
func (q *qosEngine) restore(reg RegisterAccess, d *Descriptor) {
	tuples, ok := q.shadows[d.ID]
	if !ok {
		return
	}
	for i, base := range d.QoSPorts {
		if i >= len(tuples) {
			break
		}
		t := tuples[i]
		reg.Write32(base+qosOffsetPriority, t.Priority)
		reg.Write32(base+qosOffsetMode, t.Mode)
		reg.Write32(base+qosOffsetBandwidth, t.Bandwidth)
		reg.Write32(base+qosOffsetSaturation, t.Saturation)
		reg.Write32(base+qosOffsetExtControl, t.ExtControl)
	}
	delete(q.shadows, d.ID)
}

// hasShadow reports whether a QoS snapshot is currently held for id.
func (q *qosEngine) hasShadow(id DomainID) bool {
	_, ok := q.shadows[id]
	return ok
}

// clearShadow discards any snapshot held for id without restoring it.
func (q *qosEngine) clearShadow(id DomainID) {
	delete(q.shadows, id)
}

// clearAllShadows discards every snapshot held by the engine.
func (q *qosEngine) clearAllShadows() {
	q.shadows = make(map[DomainID][]qosTuple)
}
