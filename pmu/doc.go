// Package pmu drives the power domains of a Rockchip RK3568/RK3588 PMU
// (Power Management Unit): the ordered register sequences that gate a
// domain's main power, memory retention, and bus-idle handshake, the
// parent/child dependency rules between domains, and the QoS shadow
// registers that must survive a power cycle.
//
// The package is single-threaded and cooperative: every operation runs to
// completion on the calling goroutine and none of them block on anything
// but a bounded register poll. A Driver does no internal locking;
// callers that need cross-goroutine access must serialize it themselves.
package pmu
