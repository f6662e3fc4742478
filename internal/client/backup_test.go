package client

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/starcomputers/internal/content"
)

func TestFileBackupRoundTrip(t *testing.T) {
	backup := NewFileBackup(newBackupPath(t))

	doc := content.Default()
	doc.Company.Name = "ROUND TRIP"
	if err := backup.Save(doc); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, ok, err := backup.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected backup to exist")
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Fatal("expected loaded backup to equal the saved document")
	}
}

func TestFileBackupLoadMissingFile(t *testing.T) {
	backup := NewFileBackup(newBackupPath(t))

	_, ok, err := backup.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ok {
		t.Fatal("expected missing backup to report ok=false")
	}
}

func TestFileBackupLoadCorruptFile(t *testing.T) {
	path := newBackupPath(t)
	if err := os.WriteFile(path, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt backup: %v", err)
	}

	backup := NewFileBackup(path)
	if _, _, err := backup.Load(); err == nil {
		t.Fatal("expected error for corrupt backup file")
	}
}

func TestFileBackupClearIsIdempotent(t *testing.T) {
	backup := NewFileBackup(newBackupPath(t))

	if err := backup.Save(content.Default()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := backup.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if err := backup.Clear(); err != nil {
		t.Fatalf("expected second Clear to succeed, got %v", err)
	}

	if _, ok, _ := backup.Load(); ok {
		t.Fatal("expected backup to be gone after Clear")
	}
}

func TestFileBackupCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultBackupFilename)
	backup := NewFileBackup(path)

	if err := backup.Save(content.Default()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, ok, err := backup.Load(); err != nil || !ok {
		t.Fatalf("expected backup under nested dir, ok=%v err=%v", ok, err)
	}
}
