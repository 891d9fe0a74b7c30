package pmu

// RK3568 power domain identifiers. Values and names follow the
// Linux-kernel pm_domains.c table for px30/rk3568-class PMUs, the
// authoritative source for domain names and bit positions.
const (
	RK3568GPU    DomainID = 7
	RK3568NPU    DomainID = 6
	RK3568VPU    DomainID = 11
	RK3568VI     DomainID = 8
	RK3568VO     DomainID = 9
	RK3568RGA    DomainID = 10
	RK3568RKVDEC DomainID = 13
	RK3568RKVENC DomainID = 14
	RK3568PIPE   DomainID = 15
)

var rk3568Layout = RegisterLayout{
	PwrReq:   0xa0,
	PwrState: 0x98,

	MemReq:   registerAbsent,
	MemState: registerAbsent,

	BusIdleReq:   0x50,
	BusIdleAck:   0x60,
	BusIdleState: 0x68,

	RepairStatus: registerAbsent,
}

var rk3568Table = newTable(rk3568Layout, []*Descriptor{
	{
		ID: RK3568GPU, Name: "gpu",
		PwrBit: 0, ReqBit: 1, RepairBit: NoBit, Parent: NoParent,
		QoSPorts: []uint32{0xFE128000},
	},
	{
		ID: RK3568NPU, Name: "npu",
		PwrBit: 1, ReqBit: 2, RepairBit: NoBit, Parent: NoParent,
		QoSPorts: []uint32{0xFE138000},
	},
	{
		ID: RK3568VPU, Name: "vpu",
		PwrBit: 2, ReqBit: 6, RepairBit: NoBit, Parent: NoParent,
		QoSPorts: []uint32{0xFE148000, 0xFE148000 + 0x1000},
	},
	{
		ID: RK3568VI, Name: "vi",
		PwrBit: 6, ReqBit: 3, RepairBit: NoBit, Parent: NoParent,
	},
	{
		ID: RK3568VO, Name: "vo",
		PwrBit: 7, ReqBit: 4, RepairBit: NoBit, Parent: NoParent,
	},
	{
		ID: RK3568RGA, Name: "rga",
		PwrBit: 5, ReqBit: 5, RepairBit: NoBit, Parent: NoParent,
	},
	{
		ID: RK3568RKVDEC, Name: "rkvdec",
		PwrBit: 4, ReqBit: 8, RepairBit: NoBit, Parent: RK3568VPU,
		QoSPorts: []uint32{0xFE158000},
	},
	{
		ID: RK3568RKVENC, Name: "rkvenc",
		PwrBit: 3, ReqBit: 7, RepairBit: NoBit, Parent: RK3568VPU,
		QoSPorts: []uint32{0xFE168000},
	},
	{
		ID: RK3568PIPE, Name: "pipe",
		PwrBit: 8, ReqBit: 11, RepairBit: NoBit, Parent: NoParent,
	},
})
