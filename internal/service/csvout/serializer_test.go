package csvout

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

func testWorklist() *model.Worklist {
	return &model.Worklist{
		Instrument: model.InstrumentAgilentQQQ,
		Columns: []string{
			"Sample Name", "Sample Position", "Method", "Data Folder",
			"Data File", "Sample Type", "Injection Volume",
		},
		Rows: []model.WorklistRow{
			{
				Index: 1, Type: model.TypeSample, Name: "Sample, one", VialPosition: "P1-A1",
				Fields: []string{`Sample, one`, "P1-A1", `D:\m.m`, `D:\data`, "Sample, one", "Sample", "As method"},
			},
			{
				Index: 2, Type: model.TypeQC, Name: `QC "high"`, VialPosition: "P1-A2",
				Fields: []string{`QC "high"`, "P1-A2", `D:\m.m`, `D:\data`, `QC "high"`, "QC", "As method"},
			},
		},
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	wl := testWorklist()
	text, err := Serialize(wl, true)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatalf("parse back failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// 表头使用仪器的列标签
	for i, col := range wl.Columns {
		if records[0][i] != col {
			t.Fatalf("header %d = %q, want %q", i, records[0][i], col)
		}
	}
	// 含逗号与引号的值往返后完全一致
	for r, row := range wl.Rows {
		for c, want := range row.Fields {
			if records[r+1][c] != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", r, c, records[r+1][c], want)
			}
		}
	}
}

func TestSerializeHeaderless(t *testing.T) {
	text, err := Serialize(testWorklist(), false)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatalf("parse back failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (no header)", len(records))
	}
	if records[0][0] != "Sample, one" {
		t.Fatalf("first cell = %q", records[0][0])
	}
}

func TestSerializeRowOrderIsInjectionOrder(t *testing.T) {
	wl := testWorklist()
	text, err := Serialize(wl, false)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != len(wl.Rows) {
		t.Fatalf("lines = %d, want %d", len(lines), len(wl.Rows))
	}
	if !strings.HasPrefix(lines[1], `"QC ""high"""`) {
		t.Fatalf("second line = %q", lines[1])
	}
}
