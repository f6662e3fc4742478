package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/starcomputers/internal/content"
	"github.com/starcomputers/internal/db"
	"github.com/starcomputers/internal/handler"
	"github.com/starcomputers/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// deadBackendURL 指向一个必然连接失败的地址。
const deadBackendURL = "http://127.0.0.1:1/api"

func newBackupPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), DefaultBackupFilename)
}

// newLiveBackend 启动一个带内存数据库的完整后端。
func newLiveBackend(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.SiteContent{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	server := httptest.NewServer(router.SetupRouter(handler.NewAPI(gdb), ""))

	return server, func() {
		server.Close()
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestInitLoadsFromAPIAndPersistsBackup(t *testing.T) {
	server, cleanup := newLiveBackend(t)
	defer cleanup()

	backup := NewFileBackup(newBackupPath(t))
	manager := NewManager(NewClient(server.URL+"/api"), backup)

	doc := manager.Init(context.Background())
	if doc.Company.Name != "STAR COMPUTERS" {
		t.Fatalf("expected default company from API, got %q", doc.Company.Name)
	}
	if manager.Source() != SourceAPI {
		t.Fatalf("expected api source, got %s", manager.Source())
	}
	if !manager.APIAvailable() {
		t.Fatal("expected backend to be marked available")
	}

	select {
	case <-manager.Ready():
	default:
		t.Fatal("expected readiness signal to have fired")
	}

	stored, ok, err := backup.Load()
	if err != nil || !ok {
		t.Fatalf("expected backup to be persisted, ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(stored, doc) {
		t.Fatal("expected backup to match the resolved snapshot")
	}
}

func TestInitFallsBackToLocalBackup(t *testing.T) {
	backup := NewFileBackup(newBackupPath(t))

	custom := content.Default()
	custom.Company.Name = "BACKUP NAME"
	if err := backup.Save(custom); err != nil {
		t.Fatalf("failed to seed backup: %v", err)
	}

	manager := NewManager(NewClient(deadBackendURL), backup)
	doc := manager.Init(context.Background())

	if manager.Source() != SourceLocal {
		t.Fatalf("expected local source, got %s", manager.Source())
	}
	if doc.Company.Name != "BACKUP NAME" {
		t.Fatalf("expected snapshot from backup, got %q", doc.Company.Name)
	}
	if manager.APIAvailable() {
		t.Fatal("expected backend to be marked unavailable")
	}

	select {
	case <-manager.Ready():
	default:
		t.Fatal("expected readiness signal to have fired")
	}
}

func TestInitFallsBackToDefaultWithoutBackup(t *testing.T) {
	manager := NewManager(NewClient(deadBackendURL), NewFileBackup(newBackupPath(t)))
	doc := manager.Init(context.Background())

	if manager.Source() != SourceDefault {
		t.Fatalf("expected default source, got %s", manager.Source())
	}
	if !reflect.DeepEqual(doc, content.Default()) {
		t.Fatal("expected snapshot to equal the default document")
	}
}

func TestInitFetchesExactlyOnce(t *testing.T) {
	var fetches int64
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fetches, 1)
		json.NewEncoder(w).Encode(content.Default())
	}))
	defer stub.Close()

	manager := NewManager(NewClient(stub.URL), NewFileBackup(newBackupPath(t)))

	first := manager.Init(context.Background())
	second := manager.Init(context.Background())

	if got := atomic.LoadInt64(&fetches); got != 1 {
		t.Fatalf("expected exactly one fetch, got %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected repeated Init calls to return the identical snapshot")
	}
}

func TestUpdateSectionKeepsLocalChangeWhenPushFails(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(content.Default())
			return
		}
		http.Error(w, `{"message":"Server error"}`, http.StatusInternalServerError)
	}))
	defer stub.Close()

	backup := NewFileBackup(newBackupPath(t))
	manager := NewManager(NewClient(stub.URL), backup)
	manager.Init(context.Background())

	stats := []content.Stat{{ID: 1, Value: "0", Label: "Broken Push", Gradient: "g"}}
	err := manager.UpdateSection(context.Background(), content.SectionStats, stats)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected push failure to be reported, got %v", err)
	}

	snapshot := manager.Snapshot()
	if len(snapshot.Stats) != 1 || snapshot.Stats[0].Label != "Broken Push" {
		t.Fatalf("expected optimistic change to survive push failure, got %#v", snapshot.Stats)
	}

	stored, ok, loadErr := backup.Load()
	if loadErr != nil || !ok {
		t.Fatalf("expected backup to exist, ok=%v err=%v", ok, loadErr)
	}
	if len(stored.Stats) != 1 || stored.Stats[0].Label != "Broken Push" {
		t.Fatal("expected backup to carry the optimistic change")
	}
}

func TestUpdateSectionSyncsToBackend(t *testing.T) {
	server, cleanup := newLiveBackend(t)
	defer cleanup()

	manager := NewManager(NewClient(server.URL+"/api"), NewFileBackup(newBackupPath(t)))
	manager.Init(context.Background())

	stats := []content.Stat{{ID: 1, Value: "99+", Label: "Synced", Gradient: "g"}}
	if err := manager.UpdateSection(context.Background(), content.SectionStats, stats); err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}

	remote, err := NewClient(server.URL + "/api").FetchContent(context.Background())
	if err != nil {
		t.Fatalf("failed to re-fetch from backend: %v", err)
	}
	if len(remote.Stats) != 1 || remote.Stats[0].Label != "Synced" {
		t.Fatalf("expected backend to hold the replaced stats, got %#v", remote.Stats)
	}
}

func TestSaveUploadsWholeDocument(t *testing.T) {
	server, cleanup := newLiveBackend(t)
	defer cleanup()

	manager := NewManager(NewClient(server.URL+"/api"), NewFileBackup(newBackupPath(t)))
	manager.Init(context.Background())

	doc := content.Default()
	doc.Company.Name = "SAVED NAME"
	if err := manager.Save(context.Background(), doc); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	remote, err := NewClient(server.URL + "/api").FetchContent(context.Background())
	if err != nil {
		t.Fatalf("failed to re-fetch from backend: %v", err)
	}
	if remote.Company.Name != "SAVED NAME" {
		t.Fatalf("expected backend to hold the saved document, got %q", remote.Company.Name)
	}
	if manager.Snapshot().Company.Name != "SAVED NAME" {
		t.Fatal("expected snapshot to adopt the saved document")
	}
}

func TestUpdateSectionRejectsUnknownName(t *testing.T) {
	manager := NewManager(NewClient(deadBackendURL), NewFileBackup(newBackupPath(t)))
	before := manager.Init(context.Background())

	err := manager.UpdateSection(context.Background(), "notARealSection", []string{"x"})
	if !errors.Is(err, content.ErrInvalidSection) {
		t.Fatalf("expected ErrInvalidSection, got %v", err)
	}
	if !reflect.DeepEqual(manager.Snapshot(), before) {
		t.Fatal("expected snapshot to stay unchanged")
	}
}

func TestResetAdoptsServerDocument(t *testing.T) {
	serverDoc := content.Default()
	serverDoc.Company.Name = "SERVER DOC"

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/content/reset" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Content reset to default",
				"data":    serverDoc,
			})
			return
		}
		json.NewEncoder(w).Encode(content.Default())
	}))
	defer stub.Close()

	backupPath := newBackupPath(t)
	backup := NewFileBackup(backupPath)
	manager := NewManager(NewClient(stub.URL), backup)
	manager.Init(context.Background())

	doc, err := manager.ResetToDefault(context.Background())
	if err != nil {
		t.Fatalf("ResetToDefault returned error: %v", err)
	}
	if doc.Company.Name != "SERVER DOC" {
		t.Fatalf("expected service response to win, got %q", doc.Company.Name)
	}
	if manager.Snapshot().Company.Name != "SERVER DOC" {
		t.Fatal("expected snapshot to adopt the server document")
	}

	if _, ok, _ := backup.Load(); ok {
		t.Fatal("expected local backup to be cleared by reset")
	}
}

func TestResetOfflineFallsBackToDefault(t *testing.T) {
	backup := NewFileBackup(newBackupPath(t))
	custom := content.Default()
	custom.Company.Name = "BACKUP NAME"
	if err := backup.Save(custom); err != nil {
		t.Fatalf("failed to seed backup: %v", err)
	}

	manager := NewManager(NewClient(deadBackendURL), backup)
	manager.Init(context.Background())

	doc, err := manager.ResetToDefault(context.Background())
	if err != nil {
		t.Fatalf("ResetToDefault returned error: %v", err)
	}
	if !reflect.DeepEqual(doc, content.Default()) {
		t.Fatal("expected offline reset to yield the default document")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	manager := NewManager(NewClient(deadBackendURL), NewFileBackup(newBackupPath(t)))
	manager.Init(context.Background())

	footer := content.Footer{Copyright: "© custom", DesignedBy: "nobody", DesignerLink: "#"}
	if err := manager.UpdateSection(context.Background(), content.SectionFooter, footer); err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}

	before := manager.Snapshot()
	exported, err := manager.Export()
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if err := manager.Import(context.Background(), exported); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if !reflect.DeepEqual(manager.Snapshot(), before) {
		t.Fatal("expected export/import round trip to reproduce the snapshot")
	}
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	manager := NewManager(NewClient(deadBackendURL), NewFileBackup(newBackupPath(t)))
	before := manager.Init(context.Background())

	err := manager.Import(context.Background(), []byte("not json at all"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !reflect.DeepEqual(manager.Snapshot(), before) {
		t.Fatal("expected failed import to leave state untouched")
	}
}

func TestImportAdoptsServerRecordWhenAvailable(t *testing.T) {
	server, cleanup := newLiveBackend(t)
	defer cleanup()

	manager := NewManager(NewClient(server.URL+"/api"), NewFileBackup(newBackupPath(t)))
	manager.Init(context.Background())

	imported := content.Default()
	imported.Company.Name = "IMPORTED NAME"
	payload, _ := json.Marshal(imported)

	if err := manager.Import(context.Background(), payload); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if manager.Snapshot().Company.Name != "IMPORTED NAME" {
		t.Fatal("expected snapshot to adopt the imported document")
	}

	remote, err := NewClient(server.URL + "/api").FetchContent(context.Background())
	if err != nil {
		t.Fatalf("failed to re-fetch from backend: %v", err)
	}
	if remote.Company.Name != "IMPORTED NAME" {
		t.Fatal("expected backend to hold the imported document")
	}
}
