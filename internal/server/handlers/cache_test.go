package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/lpranav17/LCMS-Automation/internal/service/namelist"
)

func TestExportStoreRoundTrip(t *testing.T) {
	s := newExportStore()

	file := &exportFile{Filename: "run.csv", ContentType: "text/csv", Bytes: []byte("a,b\n")}
	token := s.put(file, time.Minute)
	if token == "" {
		t.Fatal("token not assigned")
	}

	got, ok := s.get(token)
	if !ok {
		t.Fatal("token not found")
	}
	if got.Filename != "run.csv" || string(got.Bytes) != "a,b\n" {
		t.Fatalf("got = %+v", got)
	}

	if _, ok := s.get("no-such-token"); ok {
		t.Fatal("unknown token resolved")
	}
}

func TestExportStoreExpiredTokenRejected(t *testing.T) {
	s := newExportStore()

	token := s.put(&exportFile{Filename: "old.csv"}, -time.Minute)
	if _, ok := s.get(token); ok {
		t.Fatal("expired token resolved")
	}
	if s.len() != 0 {
		t.Fatalf("len = %d, expired entry not removed", s.len())
	}
}

func TestExportStorePurgesOnPut(t *testing.T) {
	s := newExportStore()

	// 过期条目不随后续写入累积
	for i := 0; i < 10; i++ {
		s.put(&exportFile{Filename: "stale.csv", Bytes: make([]byte, 1024)}, -time.Minute)
	}
	live := s.put(&exportFile{Filename: "live.csv"}, time.Minute)

	if s.len() != 1 {
		t.Fatalf("len = %d, want 1", s.len())
	}
	if _, ok := s.get(live); !ok {
		t.Fatal("live token lost during purge")
	}
}

func TestUploadStoreExpiry(t *testing.T) {
	s := newUploadStore()

	stale, err := namelist.Parse("stale.csv", strings.NewReader("Sample Name\nA\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	live, err := namelist.Parse("live.csv", strings.NewReader("Sample Name\nB\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	s.put(stale, -time.Minute)
	s.put(live, time.Minute)

	if _, ok := s.get(stale.ID); ok {
		t.Fatal("expired upload resolved")
	}
	if got, ok := s.get(live.ID); !ok || got.FileName != "live.csv" {
		t.Fatalf("live upload = %+v, ok = %v", got, ok)
	}
	if s.len() != 1 {
		t.Fatalf("len = %d, want 1", s.len())
	}
}
