package model

// SampleType 进样类型
type SampleType string

const (
	TypeStandard SampleType = "standard" // 标准品
	TypeSample   SampleType = "sample"   // 样品
	TypeQC       SampleType = "qc"       // 质控
	TypeBlank    SampleType = "blank"    // 空白
)

// typeLabels 内置类型的显示标签（自动编号命名时使用）
var typeLabels = map[SampleType]string{
	TypeStandard: "Standard",
	TypeSample:   "Sample",
	TypeQC:       "QC",
	TypeBlank:    "Blank",
}

// Label 返回类型的显示标签
// 未登记的扩展类型退化为首字母大写的原始值
func (t SampleType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	s := string(t)
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// FrequencyKind 频率规则类别
type FrequencyKind string

const (
	FrequencyNone      FrequencyKind = "none"      // 不穿插，按声明顺序成块放置
	FrequencyStartOnly FrequencyKind = "startOnly" // 全部放在序列最前
	FrequencyEndOnly   FrequencyKind = "endOnly"   // 全部放在序列最后
	FrequencyInterval  FrequencyKind = "interval"  // 每 n 个主序列单元后插入一个
)

// FrequencyRule 频率规则（封闭变体，每个类型恰好一条规则）
type FrequencyRule struct {
	Kind     FrequencyKind `json:"kind"`
	Interval int           `json:"interval,omitempty"` // 仅 Kind == interval 时有效，n >= 1
}

// SampleTypeConfig 单个进样类型的生成配置
type SampleTypeConfig struct {
	Type      SampleType    `json:"type"`
	Enabled   bool          `json:"enabled"`
	Count     int           `json:"count"`
	Frequency FrequencyRule `json:"frequency"`
	Naming    NamingRule    `json:"naming"`
}

// NormalizedFrequency 返回归一化后的频率规则
// 未填写 Kind 时默认为 none
func (c *SampleTypeConfig) NormalizedFrequency() FrequencyRule {
	rule := c.Frequency
	if rule.Kind == "" {
		rule.Kind = FrequencyNone
	}
	return rule
}
