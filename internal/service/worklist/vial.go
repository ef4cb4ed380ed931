package worklist

import (
	"fmt"
	"strconv"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// trayLetters HFX 托盘字母，超出单板容量时依次轮换
const trayLetters = "GBRY"

// AssignVials 按仪器板几何顺序分配孔位，满板后换下一块板
func AssignVials(slots []model.Slot, profile *model.InstrumentProfile, settings model.InstrumentSettings) {
	geom := profile.Geometry(settings.PlateType)
	capacity := geom.Capacity()
	startPlate := settings.PlateNumber
	if startPlate < 1 {
		startPlate = 1
	}

	for i := range slots {
		plate := startPlate + i/capacity
		pos := i % capacity
		slots[i].Plate = plate
		slots[i].VialPosition = renderPosition(profile.Scheme, plate, pos, geom)
	}
}

// renderPosition 按仪器方案渲染孔位
// 行优先填充：A1..A12, B1..B12, ...
func renderPosition(scheme model.PositionScheme, plate, pos int, geom model.PlateGeometry) string {
	row := pos / geom.Cols
	col := pos%geom.Cols + 1
	switch scheme {
	case model.SchemePlate:
		return fmt.Sprintf("P%d-%c%d", plate, 'A'+row, col)
	case model.SchemeTray:
		tray := trayLetters[(plate-1)%len(trayLetters)]
		return fmt.Sprintf("%c:%c%d", tray, 'A'+row, col)
	default:
		// 数字孔位，板号另列
		return strconv.Itoa(pos + 1)
	}
}

// DuplicateVialWarnings 扫描重复的 (板, 孔位) 组合
// 每个重复组产生一条警告，列出冲突行的进样序号；从不阻断导出
func DuplicateVialWarnings(slots []model.Slot) []model.Warning {
	byKey := make(map[string][]int)
	order := make([]string, 0)
	for i, s := range slots {
		if s.VialPosition == "" {
			continue
		}
		key := strconv.Itoa(s.Plate) + "/" + s.VialPosition
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], i+1)
	}

	var warnings []model.Warning
	for _, key := range order {
		rows := byKey[key]
		if len(rows) < 2 {
			continue
		}
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnDuplicateVial,
			Message: fmt.Sprintf("position %s is shared by %d injections", key, len(rows)),
			Rows:    rows,
		})
	}
	return warnings
}

// CoverageWarnings 质控覆盖提示：类型已启用但数量为 0
func CoverageWarnings(types []model.SampleTypeConfig) []model.Warning {
	var warnings []model.Warning
	for _, t := range types {
		if !t.Enabled || t.Count != 0 {
			continue
		}
		switch t.Type {
		case model.TypeQC:
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnMissingQC,
				Message: "QC injections are enabled but the worklist contains none",
			})
		case model.TypeBlank:
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnMissingBlank,
				Message: "blank injections are enabled but the worklist contains none",
			})
		}
	}
	return warnings
}
