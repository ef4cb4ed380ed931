package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

func sampleTemplate() *model.Template {
	return &model.Template{
		Instrument: model.InstrumentSciex7500,
		SampleTypes: []model.SampleTypeConfig{
			{
				Type: model.TypeSample, Enabled: true, Count: 10,
				Frequency: model.FrequencyRule{Kind: model.FrequencyNone},
				Naming:    model.NamingRule{Mode: model.NamingAutoNumber},
			},
			{
				Type: model.TypeQC, Enabled: true, Count: 2,
				Frequency: model.FrequencyRule{Kind: model.FrequencyInterval, Interval: 5},
			},
		},
		Settings: model.InstrumentSettings{
			MSMethod:        `D:\Methods\method.dam`,
			PlateType:       model.PlateVT54,
			InjectionVolume: 1,
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Save("routine", sampleTemplate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	tpl, err := store.Load("routine")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tpl.Instrument != model.InstrumentSciex7500 {
		t.Fatalf("instrument = %s", tpl.Instrument)
	}
	if len(tpl.SampleTypes) != 2 || tpl.SampleTypes[1].Frequency.Interval != 5 {
		t.Fatalf("sample types not restored: %+v", tpl.SampleTypes)
	}
	if tpl.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not set on save")
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != "routine" {
		t.Fatalf("names = %v", names)
	}
}

func TestFileStoreLoadNotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if _, err := store.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreMissingRequiredKeys(t *testing.T) {
	dir := t.TempDir()
	doc := `{
  "schemaVersion": 1,
  "items": {
    "broken": {"settings": {"msMethod": "D:\\m.dam"}}
  }
}`
	if err := os.WriteFile(filepath.Join(dir, "templates.json"), []byte(doc), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewFileStore(dir)
	_, err := store.Load("broken")
	var formatErr *model.TemplateFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected TemplateFormatError, got %v", err)
	}
	if len(formatErr.Missing) != 2 {
		t.Fatalf("missing keys = %v, want instrument and sampleTypes", formatErr.Missing)
	}
}

func TestFileStoreMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "templates.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewFileStore(dir)
	var formatErr *model.TemplateFormatError
	if _, err := store.Load("any"); !errors.As(err, &formatErr) {
		t.Fatalf("expected TemplateFormatError, got %v", err)
	}
	// 保存也必须拒绝，保证原文件不被覆盖
	if err := store.Save("any", sampleTemplate()); !errors.As(err, &formatErr) {
		t.Fatalf("expected TemplateFormatError on save, got %v", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if err := store.Save("gone", sampleTemplate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load("gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("a", sampleTemplate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save("b", sampleTemplate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}

	tpl, err := store.Load("a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// 返回副本，修改不影响存储
	tpl.Instrument = model.InstrumentHFX2
	again, _ := store.Load("a")
	if again.Instrument != model.InstrumentSciex7500 {
		t.Fatal("Load must return a copy")
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
