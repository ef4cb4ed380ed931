package store

import (
	"fmt"
	"time"
)

// ExportRecord 一次导出的历史记录
type ExportRecord struct {
	ID           int64     `json:"id"`
	ProjectName  string    `json:"projectName"`
	Instrument   string    `json:"instrument"`
	RowCount     int       `json:"rowCount"`
	WarningCount int       `json:"warningCount"`
	Format       string    `json:"format"`
	WithHeader   bool      `json:"withHeader"`
	Filename     string    `json:"filename"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordExport 写入一条导出记录，返回记录 id
func (s *Store) RecordExport(rec *ExportRecord) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO export_history (project_name, instrument, row_count, warning_count, format, with_header, filename)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ProjectName, rec.Instrument, rec.RowCount, rec.WarningCount, rec.Format, boolToInt(rec.WithHeader), rec.Filename)
	if err != nil {
		return 0, fmt.Errorf("failed to record export: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get export id: %w", err)
	}
	return id, nil
}

// ListExports 按时间倒序列出导出记录
func (s *Store) ListExports(limit int) ([]*ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, project_name, instrument, row_count, warning_count, format, with_header, filename, created_at
		FROM export_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	result := make([]*ExportRecord, 0)
	for rows.Next() {
		var rec ExportRecord
		var withHeader int
		if err := rows.Scan(&rec.ID, &rec.ProjectName, &rec.Instrument, &rec.RowCount,
			&rec.WarningCount, &rec.Format, &withHeader, &rec.Filename, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		rec.WithHeader = withHeader != 0
		result = append(result, &rec)
	}
	return result, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
