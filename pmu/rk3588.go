package pmu

// RK3588 power domain identifiers. Values and names follow the
// Linux-kernel pm_domains.c table, including the NPU/NPUTOP/NPU1/NPU2
// hierarchy and the VCODEC/VENC/RKVDEC fanout.
const (
	RK3588NPU     DomainID = 8
	RK3588NPUTOP  DomainID = 9
	RK3588NPU1    DomainID = 10
	RK3588NPU2    DomainID = 11
	RK3588GPU     DomainID = 12
	RK3588VCODEC  DomainID = 13
	RK3588RKVDEC0 DomainID = 14
	RK3588RKVDEC1 DomainID = 15
	RK3588VENC0   DomainID = 16
	RK3588VENC1   DomainID = 17
	RK3588VDPU    DomainID = 21
	RK3588RGA30   DomainID = 22
	RK3588AV1     DomainID = 23
	RK3588VOP     DomainID = 24
	RK3588VO0     DomainID = 25
	RK3588VO1     DomainID = 26
	RK3588VI      DomainID = 27
	RK3588ISP1    DomainID = 28
	RK3588FEC     DomainID = 29
	RK3588RGA31   DomainID = 30
	RK3588USB     DomainID = 31
	RK3588PHP     DomainID = 32
	RK3588GMAC    DomainID = 33
	RK3588PCIE    DomainID = 34
	RK3588NVM     DomainID = 35
	RK3588NVM0    DomainID = 36
	RK3588SDIO    DomainID = 37
	RK3588AUDIO   DomainID = 38
	RK3588SDMMC   DomainID = 40
)

// QoS port base addresses, one constant per domain family.
const (
	rk3588QoSGPUBase    = 0xFDF35000
	rk3588QoSNPUBase    = 0xFDF40000
	rk3588QoSRKVDECBase = 0xFDF48000
	rk3588QoSRKVENCBase = 0xFDF50000
	rk3588QoSVOPBase    = 0xFDF60000
	rk3588QoSVIBase     = 0xFDF70000
	rk3588QoSVCODECBase = 0xFDF78000
)

var rk3588Layout = RegisterLayout{
	PwrReq:   0x14c,
	PwrState: 0x180,

	MemReq:   0x1a0,
	MemState: 0x1f8,

	BusIdleReq:   0x10c,
	BusIdleAck:   0x118,
	BusIdleState: 0x120,

	RepairStatus: 0x290,
}

var rk3588Table = newTable(rk3588Layout, []*Descriptor{
	{
		ID: RK3588GPU, Name: "gpu",
		PwrBit: 0, ReqBit: 0, RepairBit: 1, Parent: NoParent,
		QoSPorts: []uint32{rk3588QoSGPUBase, rk3588QoSGPUBase + 0x1000},
	},
	{
		ID: RK3588NPU, Name: "npu",
		PwrBit: 1, ReqBit: NoBit, RepairBit: NoBit, Parent: NoParent,
		QoSPorts: []uint32{
			rk3588QoSNPUBase, rk3588QoSNPUBase + 0x1000,
			rk3588QoSNPUBase + 0x2000, rk3588QoSNPUBase + 0x3000,
		},
	},
	{
		ID: RK3588VCODEC, Name: "vcodec",
		PwrBit: 2, ReqBit: NoBit, RepairBit: NoBit, Parent: NoParent,
		QoSPorts: []uint32{
			rk3588QoSVCODECBase, rk3588QoSVCODECBase + 0x1000,
			rk3588QoSVCODECBase + 0x2000,
		},
	},
	{
		ID: RK3588NPUTOP, Name: "nputop",
		PwrBit: 3, MemBits: []int{11}, ReqBit: 1, RepairBit: 2, Parent: NoParent,
	},
	{
		ID: RK3588NPU1, Name: "npu1",
		PwrBit: 4, MemBits: []int{12}, ReqBit: 2, RepairBit: 3, Parent: RK3588NPUTOP,
	},
	{
		ID: RK3588NPU2, Name: "npu2",
		PwrBit: 5, MemBits: []int{13}, ReqBit: 3, RepairBit: 4, Parent: RK3588NPUTOP,
	},
	{
		ID: RK3588VENC0, Name: "venc0",
		PwrBit: 6, MemBits: []int{14}, ReqBit: 4, RepairBit: 5, Parent: RK3588VCODEC,
		QoSPorts: []uint32{rk3588QoSRKVENCBase, rk3588QoSRKVENCBase + 0x1000},
	},
	{
		ID: RK3588VENC1, Name: "venc1",
		PwrBit: 7, MemBits: []int{15}, ReqBit: 5, RepairBit: 6, Parent: RK3588VCODEC,
	},
	{
		ID: RK3588RKVDEC0, Name: "rkvdec0",
		PwrBit: 8, MemBits: []int{16}, ReqBit: 6, RepairBit: 7, Parent: RK3588VCODEC,
		QoSPorts: []uint32{rk3588QoSRKVDECBase, rk3588QoSRKVDECBase + 0x1000},
	},
	{
		ID: RK3588RKVDEC1, Name: "rkvdec1",
		PwrBit: 9, MemBits: []int{17}, ReqBit: 7, RepairBit: 8, Parent: RK3588VCODEC,
	},
	{
		ID: RK3588VDPU, Name: "vdpu",
		PwrBit: 10, MemBits: []int{18}, ReqBit: 8, RepairBit: 9, Parent: NoParent,
	},
	{
		ID: RK3588RGA30, Name: "rga30",
		PwrBit: 11, MemBits: []int{19}, ReqBit: NoBit, RepairBit: 10, Parent: NoParent,
	},
	{
		ID: RK3588AV1, Name: "av1",
		PwrBit: 12, MemBits: []int{20}, ReqBit: 9, RepairBit: 11, Parent: NoParent,
	},
	{
		ID: RK3588VI, Name: "vi",
		PwrBit: 13, MemBits: []int{21}, ReqBit: 10, RepairBit: 12, Parent: NoParent,
		QoSPorts: []uint32{rk3588QoSVIBase, rk3588QoSVIBase + 0x1000},
	},
	{
		ID: RK3588FEC, Name: "fec",
		PwrBit: 14, MemBits: []int{22}, ReqBit: NoBit, RepairBit: 13, Parent: NoParent,
	},
	{
		ID: RK3588ISP1, Name: "isp1",
		PwrBit: 15, MemBits: []int{23}, ReqBit: 11, RepairBit: 14, Parent: RK3588VI,
	},
	{
		ID: RK3588RGA31, Name: "rga31",
		PwrBit: 16, MemBits: []int{24}, ReqBit: 12, RepairBit: 15, Parent: NoParent,
	},
	{
		ID: RK3588VOP, Name: "vop",
		PwrBit: 17, MemBits: []int{25}, ReqBit: 13, RepairBit: 16, Parent: NoParent,
		QoSPorts: []uint32{
			rk3588QoSVOPBase, rk3588QoSVOPBase + 0x1000,
			rk3588QoSVOPBase + 0x2000, rk3588QoSVOPBase + 0x3000,
		},
	},
	{
		ID: RK3588VO0, Name: "vo0",
		PwrBit: 18, MemBits: []int{26}, ReqBit: 15, RepairBit: 17, Parent: RK3588VOP,
	},
	{
		ID: RK3588VO1, Name: "vo1",
		PwrBit: 19, MemBits: []int{27}, ReqBit: 16, RepairBit: 18, Parent: RK3588VOP,
	},
	{
		ID: RK3588AUDIO, Name: "audio",
		PwrBit: 20, MemBits: []int{28}, ReqBit: 17, RepairBit: 19, Parent: NoParent,
	},
	{
		ID: RK3588PHP, Name: "php",
		PwrBit: 21, MemBits: []int{29}, ReqBit: 21, RepairBit: 20, Parent: NoParent,
	},
	{
		ID: RK3588GMAC, Name: "gmac",
		PwrBit: 22, MemBits: []int{30}, ReqBit: NoBit, RepairBit: 21, Parent: NoParent,
	},
	{
		ID: RK3588PCIE, Name: "pcie",
		PwrBit: 23, MemBits: []int{31}, ReqBit: NoBit, RepairBit: 22, Parent: NoParent,
	},
	{
		ID: RK3588NVM, Name: "nvm",
		PwrBit: 24, ReqBit: NoBit, RepairBit: NoBit, Parent: NoParent,
	},
	{
		ID: RK3588NVM0, Name: "nvm0",
		PwrBit: 25, ReqBit: NoBit, RepairBit: 23, Parent: NoParent,
	},
	{
		ID: RK3588SDIO, Name: "sdio",
		PwrBit: 26, ReqBit: 18, RepairBit: 24, Parent: NoParent,
	},
	{
		ID: RK3588USB, Name: "usb",
		PwrBit: 27, ReqBit: 19, RepairBit: 25, Parent: NoParent,
	},
	{
		ID: RK3588SDMMC, Name: "sdmmc",
		PwrBit: 28, ReqBit: NoBit, RepairBit: 26, Parent: NoParent,
	},
})
