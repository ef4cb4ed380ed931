package csvout

import (
	"bytes"
	"encoding/csv"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// Serialize 将工作列表渲染为 CSV 文本
// 行序即进样顺序；含分隔符或引号的字段按标准 CSV 规则转义
func Serialize(wl *model.Worklist, includeHeader bool) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if includeHeader {
		if err := w.Write(wl.Columns); err != nil {
			return "", err
		}
	}
	for _, row := range wl.Rows {
		if err := w.Write(row.Fields); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
