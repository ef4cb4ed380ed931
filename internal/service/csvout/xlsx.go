package csvout

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// SerializeXLSX 将工作列表渲染为 Excel 工作簿
// 供需要在电子表格中复核的导出变体使用，列序与 CSV 一致
func SerializeXLSX(wl *model.Worklist) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Worklist"
	f.SetSheetName("Sheet1", sheetName)

	for i, h := range wl.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i, err)
		}
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	for r, row := range wl.Rows {
		for c, value := range row.Fields {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}
