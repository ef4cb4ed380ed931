package namelist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	csvText := "Sample Name,Dilution\nPlasma_1,1:10\nPlasma_2,1:10\n ,\nPlasma_3,1:5\n"
	list, err := Parse("names.csv", strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if list.ID == "" {
		t.Fatal("list id not assigned")
	}
	if len(list.Headers) != 2 || list.Headers[0] != "Sample Name" {
		t.Fatalf("headers = %v", list.Headers)
	}

	names, err := list.Column("Sample Name")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	// 空单元格被忽略
	want := []string{"Plasma_1", "Plasma_2", "Plasma_3"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i, w := range want {
		if names[i] != w {
			t.Fatalf("name %d = %q, want %q", i, names[i], w)
		}
	}
}

func TestParseCSVColumnByIndex(t *testing.T) {
	list, err := Parse("names.csv", strings.NewReader("A,B\n1,x\n2,y\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	names, err := list.ColumnAt(1)
	if err != nil {
		t.Fatalf("ColumnAt failed: %v", err)
	}
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Fatalf("names = %v", names)
	}
	if _, err := list.ColumnAt(5); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Sample Name")
	f.SetCellValue(sheet, "A2", "Serum_1")
	f.SetCellValue(sheet, "A3", "Serum_2")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook failed: %v", err)
	}

	list, err := Parse("names.xlsx", &buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	names, err := list.Column("Sample Name")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Serum_1" {
		t.Fatalf("names = %v", names)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := Parse("names.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseUnknownColumn(t *testing.T) {
	list, err := Parse("names.csv", strings.NewReader("A\n1\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := list.Column("B"); err == nil {
		t.Fatal("expected error for unknown column")
	}
}
