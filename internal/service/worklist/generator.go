package worklist

import (
	"fmt"
	"regexp"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// projectNamePattern 推荐的项目名格式，如 MPG_25-12_GaIEMA
var projectNamePattern = regexp.MustCompile(`^[A-Za-z]{2,3}_\d{2}-\d{2}_\w+$`)

// Generate 一次完整的工作列表生成
// 纯函数：相同输入产出逐字节一致的结果；硬错误在任何行产出之前返回
func Generate(req *model.GenerateRequest) (*model.Worklist, error) {
	profile, ok := model.ProfileFor(req.Instrument)
	if !ok {
		return nil, fmt.Errorf("unsupported instrument: %q", req.Instrument)
	}

	// 硬校验先行：名单长度、频率规则
	if err := ValidateNaming(req.SampleTypes); err != nil {
		return nil, err
	}
	slots, err := Place(req.SampleTypes)
	if err != nil {
		return nil, err
	}
	if err := ResolveNames(slots, req.SampleTypes); err != nil {
		return nil, err
	}
	AssignVials(slots, profile, req.Settings)

	var warnings []model.Warning
	if req.ProjectName != "" && !projectNamePattern.MatchString(req.ProjectName) {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnProjectNameFormat,
			Message: "project name does not match the recommended format (e.g. MPG_25-12_GaIEMA)",
		})
	}
	warnings = append(warnings, CoverageWarnings(req.SampleTypes)...)

	rows, composeWarnings := ComposeRows(slots, req, profile)
	warnings = append(warnings, composeWarnings...)
	warnings = append(warnings, DuplicateVialWarnings(slots)...)

	return &model.Worklist{
		Instrument: profile.ID,
		Columns:    profile.Columns,
		Rows:       rows,
		Warnings:   warnings,
	}, nil
}
