package worklist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// agilentTypeNames Agilent 批处理表的样品类型映射
var agilentTypeNames = map[model.SampleType]string{
	model.TypeStandard: "Sample",
	model.TypeSample:   "Sample",
	model.TypeQC:       "QC",
	model.TypeBlank:    "Blank",
}

// hfxTypeNames HFX 序列表的样品类型映射
var hfxTypeNames = map[model.SampleType]string{
	model.TypeStandard: "Std Bracket",
	model.TypeSample:   "Unknown",
	model.TypeQC:       "QC",
	model.TypeBlank:    "Blank",
}

// ComposeRows 将进样单元与仪器档案合并为完整导出行
// 约束检查只产生警告，从不阻止行的生成
func ComposeRows(slots []model.Slot, req *model.GenerateRequest, profile *model.InstrumentProfile) ([]model.WorklistRow, []model.Warning) {
	var warnings []model.Warning

	if profile.RequireDDrive && req.ParentFolder != "" &&
		!strings.HasPrefix(strings.ToUpper(req.ParentFolder), "D:") {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnPathConstraint,
			Message: fmt.Sprintf("%s requires the data folder to be on the D: drive", profile.ID),
		})
	}
	if profile.MethodExt != "" && req.Settings.MSMethod != "" &&
		!strings.HasSuffix(req.Settings.MSMethod, profile.MethodExt) {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnMethodExtension,
			Message: fmt.Sprintf("%s method file should have the %s extension", profile.ID, profile.MethodExt),
		})
	}

	rows := make([]model.WorklistRow, 0, len(slots))
	for i, slot := range slots {
		row := model.WorklistRow{
			Index:        i + 1,
			Type:         slot.Type,
			Name:         slot.Name,
			VialPosition: slot.VialPosition,
		}
		switch profile.ID {
		case model.InstrumentAgilentQQQ:
			row.Fields = agilentFields(slot, req)
		case model.InstrumentHFX2:
			row.Fields = hfxFields(slot, req)
		default:
			row.Fields = sciexFields(slot, req, profile)
		}
		rows = append(rows, row)
	}
	return rows, warnings
}

// sciexFields Sciex7500 批处理表的一行
func sciexFields(slot model.Slot, req *model.GenerateRequest, profile *model.InstrumentProfile) []string {
	plateType := req.Settings.PlateType
	if plateType == "" {
		plateType = profile.DefaultPlateType
	}
	return []string{
		slot.Name,
		req.Settings.MSMethod,
		req.Settings.LCMethod,
		profile.RackType,
		plateType,
		strconv.Itoa(slot.Plate),
		slot.VialPosition,
		formatVolume(req.Settings.InjectionVolume),
		joinDataPath(req.ParentFolder, slot.Name),
	}
}

// agilentFields AgilentQQQ 批处理表的一行
// 进样体积始终取方法内设定
func agilentFields(slot model.Slot, req *model.GenerateRequest) []string {
	typeName, ok := agilentTypeNames[slot.Type]
	if !ok {
		typeName = "Sample"
	}
	return []string{
		slot.Name,
		slot.VialPosition,
		req.Settings.MSMethod,
		req.ParentFolder,
		slot.Name,
		typeName,
		"As method",
	}
}

// hfxFields HFX-2 序列表的一行
// 标准品/QC 需要级别与称样量字段
func hfxFields(slot model.Slot, req *model.GenerateRequest) []string {
	typeName, ok := hfxTypeNames[slot.Type]
	if !ok {
		typeName = "Unknown"
	}
	level, sampleWt := "", ""
	if typeName == "QC" || typeName == "Std Bracket" {
		level = "1"
		sampleWt = "0"
	}
	return []string{
		typeName,
		slot.Name + ".raw",
		slot.Name,
		req.ParentFolder,
		req.Settings.MSMethod,
		"", // Process Method
		"", // Calibration File
		slot.VialPosition,
		formatVolume(req.Settings.InjectionVolume),
		level,
		sampleWt,
		"", // Sample Vol
		"", // ISTD Amt
		"1",
		"", "", "", "", "", // L1..L5
		"", // Comment
		slot.Name,
	}
}

// joinDataPath 拼接数据文件完整路径（Windows 风格反斜杠）
func joinDataPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return strings.TrimRight(parent, `\/`) + `\` + name
}

// formatVolume 进样体积的最短十进制表示
func formatVolume(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
