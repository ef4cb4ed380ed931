package model

// Instrument 支持的仪器型号
type Instrument string

const (
	InstrumentSciex7500  Instrument = "Sciex7500"
	InstrumentAgilentQQQ Instrument = "AgilentQQQ"
	InstrumentHFX2       Instrument = "HFX-2"
)

// 板型标识
const (
	PlateVT54  = "1.5mL VT54 (54 vial)" // Sciex 54 孔进样架
	PlateMTP96 = "MTP 96"               // Sciex 96 微孔板
	Plate96    = "96-well plate"        // Agilent / HFX 通用 96 孔板
)

// PositionScheme 孔位编号方案
type PositionScheme string

const (
	SchemeNumeric PositionScheme = "numeric" // 纯数字孔位，板号单独成列（Sciex）
	SchemePlate   PositionScheme = "plate"   // P<板号>-<行字母><列号>（Agilent）
	SchemeTray    PositionScheme = "tray"    // <托盘字母>:<行字母><列号>（HFX）
)

// PlateGeometry 板几何
type PlateGeometry struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Capacity 单板容量
func (g PlateGeometry) Capacity() int {
	return g.Rows * g.Cols
}

// InstrumentProfile 仪器配置档案：导出列顺序、板几何、路径约束
type InstrumentProfile struct {
	ID               Instrument               `json:"id"`
	Columns          []string                 `json:"columns"`
	PlateTypes       map[string]PlateGeometry `json:"plateTypes"`
	DefaultPlateType string                   `json:"defaultPlateType"`
	Scheme           PositionScheme           `json:"scheme"`
	MethodExt        string                   `json:"methodExt,omitempty"`  // 要求的方法文件扩展名（HFX）
	RequireDDrive    bool                     `json:"requireDDrive"`        // 数据目录必须位于 D: 盘（Agilent）
	RackType         string                   `json:"rackType,omitempty"`   // 进样架类型（Sciex 固定值）
}

// profiles 内置仪器档案
var profiles = map[Instrument]*InstrumentProfile{
	InstrumentSciex7500: {
		ID: InstrumentSciex7500,
		Columns: []string{
			"Sample Name", "MS Method", "LC Method", "Rack Type",
			"Plate Type", "Plate Number", "Vial Position", "Injection Volume", "Data File",
		},
		PlateTypes: map[string]PlateGeometry{
			PlateVT54:  {Rows: 6, Cols: 9},
			PlateMTP96: {Rows: 8, Cols: 12},
		},
		DefaultPlateType: PlateVT54,
		Scheme:           SchemeNumeric,
		RackType:         "SIL-40 Drawer",
	},
	InstrumentAgilentQQQ: {
		ID: InstrumentAgilentQQQ,
		Columns: []string{
			"Sample Name", "Sample Position", "Method", "Data Folder",
			"Data File", "Sample Type", "Injection Volume",
		},
		PlateTypes: map[string]PlateGeometry{
			Plate96: {Rows: 8, Cols: 12},
		},
		DefaultPlateType: Plate96,
		Scheme:           SchemePlate,
		RequireDDrive:    true,
	},
	InstrumentHFX2: {
		ID: InstrumentHFX2,
		Columns: []string{
			"Sample Type", "File Name", "Sample ID", "Path",
			"Instrument Method", "Process Method", "Calibration File", "Position",
			"Inj Vol", "Level", "Sample Wt", "Sample Vol", "ISTD Amt", "Dil Factor",
			"L1 Study", "L2 Client", "L3 Laboratory", "L4 Company", "L5 Phone",
			"Comment", "Sample Name",
		},
		PlateTypes: map[string]PlateGeometry{
			Plate96: {Rows: 8, Cols: 12},
		},
		DefaultPlateType: Plate96,
		Scheme:           SchemeTray,
		MethodExt:        ".meth",
	},
}

// ProfileFor 按仪器型号查找档案
func ProfileFor(inst Instrument) (*InstrumentProfile, bool) {
	p, ok := profiles[inst]
	return p, ok
}

// Instruments 返回全部支持的仪器型号
func Instruments() []Instrument {
	return []Instrument{InstrumentSciex7500, InstrumentAgilentQQQ, InstrumentHFX2}
}

// Geometry 查找板型对应的几何，未知板型退回默认板型
func (p *InstrumentProfile) Geometry(plateType string) PlateGeometry {
	if g, ok := p.PlateTypes[plateType]; ok {
		return g
	}
	return p.PlateTypes[p.DefaultPlateType]
}

// InstrumentSettings 仪器相关的逐批次设置（来自 UI 表单）
type InstrumentSettings struct {
	MSMethod        string  `json:"msMethod"`
	LCMethod        string  `json:"lcMethod,omitempty"` // 仅 Sciex
	PlateType       string  `json:"plateType,omitempty"`
	PlateNumber     int     `json:"plateNumber,omitempty"` // 起始板号，默认 1
	InjectionVolume float64 `json:"injectionVolume,omitempty"`
}
