package model

import "fmt"

// NamingLengthMismatchError 手动/导入名单长度与类型数量不一致
// 在产出任何行之前即被检出
type NamingLengthMismatchError struct {
	Type     SampleType
	Expected int
	Actual   int
}

func (e *NamingLengthMismatchError) Error() string {
	return fmt.Sprintf("naming list for %s has %d names, expected %d",
		e.Type.Label(), e.Actual, e.Expected)
}

// InvalidFrequencyRuleError 非法频率规则（如 interval < 1）
type InvalidFrequencyRuleError struct {
	Type     SampleType
	Interval int
}

func (e *InvalidFrequencyRuleError) Error() string {
	return fmt.Sprintf("invalid interval %d for %s: interval must be >= 1",
		e.Interval, e.Type.Label())
}

// TemplateFormatError 模板文档格式错误：缺少必需键或无法解析
// 加载失败时不做任何部分装载
type TemplateFormatError struct {
	Name    string
	Missing []string
	Reason  string
}

func (e *TemplateFormatError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("template %q is missing required keys: %v", e.Name, e.Missing)
	}
	return fmt.Sprintf("template %q is malformed: %s", e.Name, e.Reason)
}
