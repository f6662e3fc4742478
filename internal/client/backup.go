package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starcomputers/internal/content"
)

// DefaultBackupFilename 是本地备份的固定文件名。
const DefaultBackupFilename = "star-computers-content.json"

// BackupStore 抽象最近一次已知内容快照的本地持久化。
// 每次调用整读整写，不存在部分写入。
type BackupStore interface {
	Load() (content.Document, bool, error)
	Save(doc content.Document) error
	Clear() error
}

// FileBackup 把快照以 JSON 文件形式落盘。
// 写入先落临时文件再改名，保证读取方看不到半截内容。
type FileBackup struct {
	path string
}

// NewFileBackup 构造写入 path 的备份存储。
func NewFileBackup(path string) *FileBackup {
	return &FileBackup{path: path}
}

// Load 读取备份快照。文件不存在不算错误，ok 返回 false。
func (b *FileBackup) Load() (content.Document, bool, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return content.Document{}, false, nil
		}
		return content.Document{}, false, fmt.Errorf("read backup %s: %w", b.path, err)
	}

	var doc content.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return content.Document{}, false, fmt.Errorf("decode backup %s: %w", b.path, err)
	}
	return doc, true, nil
}

// Save 覆盖写入快照。
func (b *FileBackup) Save(doc content.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	dir := filepath.Dir(b.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create backup dir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".content-backup-*")
	if err != nil {
		return fmt.Errorf("create backup temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close backup temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace backup %s: %w", b.path, err)
	}
	return nil
}

// Clear 删除备份文件，不存在时静默成功。
func (b *FileBackup) Clear() error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove backup %s: %w", b.path, err)
	}
	return nil
}
