package worklist

import (
	"fmt"
	"strconv"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// ValidateNaming 校验手动/导入名单长度
// 在产出任何行之前调用，长度不符即整体失败
func ValidateNaming(types []model.SampleTypeConfig) error {
	for _, t := range types {
		if !t.Enabled {
			continue
		}
		switch t.Naming.NormalizedMode() {
		case model.NamingManual, model.NamingImported:
			if len(t.Naming.Names) != t.Count {
				return &model.NamingLengthMismatchError{
					Type:     t.Type,
					Expected: t.Count,
					Actual:   len(t.Naming.Names),
				}
			}
		}
	}
	return nil
}

// ResolveNames 为序列中的每个单元解析显示名
// 仅依赖类型内序号与该类型的命名规则，与排序位置无关
func ResolveNames(slots []model.Slot, types []model.SampleTypeConfig) error {
	if err := ValidateNaming(types); err != nil {
		return err
	}

	rules := make(map[model.SampleType]model.NamingRule, len(types))
	for _, t := range types {
		rules[t.Type] = t.Naming
	}

	for i := range slots {
		slots[i].Name = resolveName(slots[i], rules[slots[i].Type])
	}
	return nil
}

// resolveName 按命名规则变体分发
func resolveName(slot model.Slot, rule model.NamingRule) string {
	switch rule.NormalizedMode() {
	case model.NamingAutoBuild:
		start := rule.StartIndex
		if start < 1 {
			start = 1
		}
		idx := start + slot.Ordinal - 1
		if rule.Suffix != "" {
			return fmt.Sprintf("%s_%d_%s", rule.Prefix, idx, rule.Suffix)
		}
		return fmt.Sprintf("%s_%d", rule.Prefix, idx)
	case model.NamingManual, model.NamingImported:
		// 长度已在 ValidateNaming 保证
		return rule.Names[slot.Ordinal-1]
	default:
		return slot.Type.Label() + strconv.Itoa(slot.Ordinal)
	}
}
