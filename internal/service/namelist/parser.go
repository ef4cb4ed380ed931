package namelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// List 一份已上传的名单文件：首行作为表头，其余为数据行
// 用户选定列后得到按行排列的样品名
type List struct {
	ID       string   `json:"id"`
	FileName string   `json:"fileName"`
	Headers  []string `json:"headers"`
	rows     [][]string
}

// Parse 按文件扩展名解析名单（.csv 或 .xlsx）
func Parse(fileName string, r io.Reader) (*List, error) {
	var (
		records [][]string
		err     error
	)
	switch {
	case strings.HasSuffix(strings.ToLower(fileName), ".csv"):
		records, err = parseCSV(r)
	case strings.HasSuffix(strings.ToLower(fileName), ".xlsx"):
		records, err = parseXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported name list format: %s", fileName)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("name list %s is empty", fileName)
	}

	return &List{
		ID:       uuid.New().String(),
		FileName: fileName,
		Headers:  records[0],
		rows:     records[1:],
	}, nil
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func parseXLSX(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	// 名单取第一个工作表
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// RowCount 数据行数（不含表头）
func (l *List) RowCount() int {
	return len(l.rows)
}

// Column 按表头名取一列样品名，忽略空单元格
func (l *List) Column(header string) ([]string, error) {
	for i, h := range l.Headers {
		if h == header {
			return l.columnAt(i), nil
		}
	}
	return nil, fmt.Errorf("column %q not found in %s", header, l.FileName)
}

// ColumnAt 按列下标（0 起）取一列样品名
func (l *List) ColumnAt(idx int) ([]string, error) {
	if idx < 0 || idx >= len(l.Headers) {
		return nil, fmt.Errorf("column index %d out of range", idx)
	}
	return l.columnAt(idx), nil
}

func (l *List) columnAt(idx int) []string {
	names := make([]string, 0, len(l.rows))
	for _, row := range l.rows {
		if idx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[idx])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
