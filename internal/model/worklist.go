package model

// Slot 一个待进样单元：排序产出，命名与孔位在后续阶段填入
type Slot struct {
	Type         SampleType `json:"type"`
	Ordinal      int        `json:"ordinal"` // 类型内序号，1 起
	Name         string     `json:"name"`
	Plate        int        `json:"plate,omitempty"`        // 分配到的板序号，1 起
	VialPosition string     `json:"vialPosition,omitempty"` // 按仪器方案渲染后的孔位
}

// WorklistRow 最终导出行：进样顺序 + 身份字段 + 仪器档案派生字段
// Fields 与仪器档案的 Columns 一一对应
type WorklistRow struct {
	Index        int        `json:"index"` // 进样序号，1 起、连续
	Type         SampleType `json:"type"`
	Name         string     `json:"name"`
	VialPosition string     `json:"vialPosition"`
	Fields       []string   `json:"fields"`
}

// GenerateRequest 一次生成的完整输入（无环境状态，重复调用结果一致）
type GenerateRequest struct {
	Instrument   Instrument         `json:"instrument"`
	ProjectName  string             `json:"projectName"`
	ParentFolder string             `json:"parentFolder"`
	SampleTypes  []SampleTypeConfig `json:"sampleTypes"`
	Settings     InstrumentSettings `json:"settings"`
}

// Worklist 生成结果：行序即进样顺序，警告不阻断导出
type Worklist struct {
	Instrument Instrument    `json:"instrument"`
	Columns    []string      `json:"columns"`
	Rows       []WorklistRow `json:"rows"`
	Warnings   []Warning     `json:"warnings"`
}
