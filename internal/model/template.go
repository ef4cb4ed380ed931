package model

import "time"

// Template 一份可复用的输入配置快照（不含生成出的行）
// 显式保存时创建，显式选择时加载，从不自动修改
type Template struct {
	Instrument  Instrument         `json:"instrument"`
	SampleTypes []SampleTypeConfig `json:"sampleTypes"`
	Settings    InstrumentSettings `json:"settings"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty"`
}
