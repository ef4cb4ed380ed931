package model

// NamingMode 命名模式
type NamingMode string

const (
	NamingAutoNumber NamingMode = "autoNumber" // 类型标签 + 序号，如 QC1
	NamingAutoBuild  NamingMode = "autoBuild"  // 前缀_序号_后缀
	NamingManual     NamingMode = "manual"     // 逐个手动输入
	NamingImported   NamingMode = "imported"   // 从外部文件导入
)

// NamingRule 命名规则（封闭变体，按 Mode 分发）
type NamingRule struct {
	Mode       NamingMode `json:"mode"`
	Prefix     string     `json:"prefix,omitempty"`     // autoBuild
	Suffix     string     `json:"suffix,omitempty"`     // autoBuild，可为空
	StartIndex int        `json:"startIndex,omitempty"` // autoBuild 起始序号，默认 1
	Names      []string   `json:"names,omitempty"`      // manual / imported，长度必须等于 Count
}

// NormalizedMode 返回归一化后的命名模式
// 未填写时默认为自动编号
func (r NamingRule) NormalizedMode() NamingMode {
	if r.Mode == "" {
		return NamingAutoNumber
	}
	return r.Mode
}
