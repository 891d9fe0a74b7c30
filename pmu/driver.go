package pmu

import (
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
)

// Driver is the top-level facade for one chip's PMU: construction
// resolves and validates the chip variant once, and every subsequent
// operation is keyed by DomainID against that fixed table.
type Driver struct {
	variant ChipVariant
	table   *table
	reg     RegisterAccess

	seq  *sequencer
	deps *depManager
	qos  *qosEngine

	log     logr.Logger
	metrics *metrics
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithLogger overrides the Driver's default logr.Logger.
func WithLogger(log logr.Logger) Option {
	return func(d *Driver) { d.log = log }
}

// NewDriver constructs a Driver over an already-built RegisterAccess
// (typically mmioAccess for production, mockRegisterAccess for tests).
// variant is validated once here; an unrecognized variant fails
// construction rather than surfacing as a per-call Unsupported error.
func NewDriver(reg RegisterAccess, variant ChipVariant, opts ...Option) (*Driver, *Error) {
	t, err := tableFor(variant)
	if err != nil {
		return nil, err
	}
	qos := newQoSEngine()
	d := &Driver{
		variant: variant,
		table:   t,
		reg:     reg,
		seq:     newSequencer(reg, &t.layout, qos),
		deps:    newDepManager(t),
		qos:     qos,
		log:     NewLogger(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewMMIODriver constructs a Driver over a real, already-mapped PMU
// register window at base.
func NewMMIODriver(base uintptr, variant ChipVariant, opts ...Option) (*Driver, *Error) {
	return NewDriver(newMMIOAccess(base), variant, opts...)
}

// Variant returns the chip variant this Driver was constructed for.
func (d *Driver) Variant() ChipVariant { return d.variant }

// Metrics returns the Prometheus collectors this Driver updates, for a
// caller to register with its own prometheus.Registerer.
func (d *Driver) Metrics() []prometheus.Collector {
	return d.metrics.Collectors()
}

// PowerOn runs the domain's power-on sub-step sequence directly, without
// consulting or updating the dependency manager's active set. Most
// callers should prefer PowerOnWithDeps; PowerOn exists for callers that
// manage their own ordering.
func (d *Driver) PowerOn(id DomainID) *Error {
	return d.timed("power_on", id, func(desc *Descriptor) *Error {
		return d.seq.powerOn(desc)
	})
}

// PowerOff runs the domain's power-off sub-step sequence directly,
// without consulting or updating the dependency manager's active set.
func (d *Driver) PowerOff(id DomainID) *Error {
	return d.timed("power_off", id, func(desc *Descriptor) *Error {
		return d.seq.powerOff(desc)
	})
}

// PowerOnWithDeps enforces parent-before-child before running the
// power-on sequence, then marks id active in the in-memory active set
// on success.
func (d *Driver) PowerOnWithDeps(id DomainID) *Error {
	return d.timed("power_on_with_deps", id, func(desc *Descriptor) *Error {
		if err := d.deps.checkPowerOn(desc); err != nil {
			return err
		}
		if err := d.seq.powerOn(desc); err != nil {
			return err
		}
		d.deps.markActive(id)
		return nil
	})
}

// PowerOffWithDeps enforces child-before-parent before running the
// power-off sequence, then marks id inactive in the in-memory active
// set on success.
func (d *Driver) PowerOffWithDeps(id DomainID) *Error {
	return d.timed("power_off_with_deps", id, func(desc *Descriptor) *Error {
		if err := d.deps.checkPowerOff(desc); err != nil {
			return err
		}
		if err := d.seq.powerOff(desc); err != nil {
			return err
		}
		d.deps.markInactive(id)
		return nil
	})
}

// ActiveDomains returns every domain id the in-memory dependency manager
// currently believes active, in ascending id order. This set is never
// re-synchronized against hardware.
func (d *Driver) ActiveDomains() []DomainID {
	return d.deps.activeDomains()
}

// IsActive reports whether id is in the in-memory active set.
func (d *Driver) IsActive(id DomainID) bool {
	return d.deps.isActive(id)
}

// HasShadow reports whether a QoS snapshot is currently held for id.
func (d *Driver) HasShadow(id DomainID) bool {
	return d.qos.hasShadow(id)
}

// ClearShadow discards any QoS snapshot held for id without restoring
// it.
func (d *Driver) ClearShadow(id DomainID) {
	d.qos.clearShadow(id)
}

// ClearAllShadows discards every QoS snapshot the Driver holds.
func (d *Driver) ClearAllShadows() {
	d.qos.clearAllShadows()
}

func (d *Driver) timed(operation string, id DomainID, fn func(*Descriptor) *Error) *Error {
	desc, lookupErr := d.table.lookup(id)
	if lookupErr != nil {
		d.metrics.observe(id.String(), operation, 0, &lookupErr.Kind)
		d.log.Error(lookupErr, "domain lookup failed", "operation", operation, "domain", id)
		return lookupErr
	}

	cid := correlationID()
	start := time.Now()
	log := d.log.WithValues("operation", operation, "domain", desc.Name, "correlation_id", cid)
	log.V(1).Info("starting operation")

	err := fn(desc)

	elapsed := time.Since(start).Seconds()
	if err != nil {
		d.metrics.observe(desc.Name, operation, elapsed, &err.Kind)
		log.Error(err, "operation failed", "stage", err.Stage)
		return err
	}
	d.metrics.observe(desc.Name, operation, elapsed, nil)
	log.V(1).Info("operation complete")
	return nil
}

// String lets DomainID participate in logr's key/value pairs and
// Prometheus label values without a format verb lookup.
func (id DomainID) String() string {
	return strconv.Itoa(int(id))
}
