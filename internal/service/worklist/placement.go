package worklist

import (
	"sort"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// insertion 一次穿插：在第 hostPos 个主序列单元之后插入
// decl 为类型声明序，同一插入点并列时按声明顺序定序
type insertion struct {
	hostPos int
	decl    int
	slot    model.Slot
}

// Place 按频率规则将各类型展开为线性进样序列
// 序列顺序即进样顺序；类型内序号从 1 起连续递增
func Place(types []model.SampleTypeConfig) ([]model.Slot, error) {
	for _, t := range types {
		rule := t.NormalizedFrequency()
		if t.Enabled && rule.Kind == model.FrequencyInterval && rule.Interval < 1 {
			return nil, &model.InvalidFrequencyRuleError{Type: t.Type, Interval: rule.Interval}
		}
	}

	var start, host, end []model.Slot
	var inserts []insertion

	// 主序列：none 规则的类型按声明顺序整块展开
	for _, t := range types {
		if !t.Enabled || t.Count <= 0 {
			continue
		}
		switch t.NormalizedFrequency().Kind {
		case model.FrequencyStartOnly:
			start = appendUnits(start, t)
		case model.FrequencyEndOnly:
			end = appendUnits(end, t)
		case model.FrequencyNone:
			host = appendUnits(host, t)
		}
	}

	// 穿插类型各自独立地对照原始主序列定位，再按目标位置合并
	for decl, t := range types {
		if !t.Enabled || t.Count <= 0 {
			continue
		}
		rule := t.NormalizedFrequency()
		if rule.Kind != model.FrequencyInterval {
			continue
		}
		for j := 1; j <= t.Count; j++ {
			pos := j * rule.Interval
			if pos > len(host) {
				// 主序列剩余不足 n 个：余量整体追加到主序列末尾
				pos = len(host)
			}
			inserts = append(inserts, insertion{
				hostPos: pos,
				decl:    decl,
				slot:    model.Slot{Type: t.Type, Ordinal: j},
			})
		}
	}

	sort.SliceStable(inserts, func(i, j int) bool {
		if inserts[i].hostPos != inserts[j].hostPos {
			return inserts[i].hostPos < inserts[j].hostPos
		}
		return inserts[i].decl < inserts[j].decl
	})

	out := make([]model.Slot, 0, len(start)+len(host)+len(inserts)+len(end))
	out = append(out, start...)
	k := 0
	for i := 0; i <= len(host); i++ {
		if i > 0 {
			out = append(out, host[i-1])
		}
		for k < len(inserts) && inserts[k].hostPos == i {
			out = append(out, inserts[k].slot)
			k++
		}
	}
	out = append(out, end...)

	return out, nil
}

// appendUnits 将一个类型的 Count 展开为带类型内序号的单元
func appendUnits(dst []model.Slot, t model.SampleTypeConfig) []model.Slot {
	for i := 1; i <= t.Count; i++ {
		dst = append(dst, model.Slot{Type: t.Type, Ordinal: i})
	}
	return dst
}
