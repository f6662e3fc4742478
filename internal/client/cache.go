package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/starcomputers/internal/content"
)

// ExportFilename 是导出文档的固定文件名。
const ExportFilename = "site-content.json"

// ErrParse 表示导入的序列化文档不是合法 JSON 或不符合文档结构。
var ErrParse = errors.New("invalid import payload")

// Source 标记当前快照的来源。
type Source string

const (
	// SourceAPI 表示快照来自后端服务。
	SourceAPI Source = "api"
	// SourceLocal 表示快照来自本地备份。
	SourceLocal Source = "local"
	// SourceDefault 表示快照来自内置默认内容。
	SourceDefault Source = "default"
)

// Manager 是客户端内容缓存：镜像后端的唯一文档，
// 后端不可达时按 本地备份 → 默认内容 逐级降级。
// 所有写操作先落本地再尝试上行，上行失败不回滚本地状态。
type Manager struct {
	api    *Client
	backup BackupStore

	initOnce sync.Once
	ready    chan struct{}

	mu           sync.Mutex
	snapshot     content.Document
	source       Source
	apiAvailable bool
}

// NewManager 构造尚未初始化的内容缓存。
func NewManager(api *Client, backup BackupStore) *Manager {
	return &Manager{
		api:    api,
		backup: backup,
		ready:  make(chan struct{}),
	}
}

// Init 解析初始快照：优先走后端，失败时降级到本地备份或默认内容。
// 只有首次调用真正发起请求，之后的调用立即返回已解析的快照，
// 因此任意多个渲染方拿到的都是同一份结果。
func (m *Manager) Init(ctx context.Context) content.Document {
	m.initOnce.Do(func() {
		doc, err := m.api.FetchContent(ctx)

		m.mu.Lock()
		if err == nil {
			m.snapshot = doc
			m.source = SourceAPI
			m.apiAvailable = true
		} else {
			log.Printf("could not load content from API, using fallback: %v", err)
			m.apiAvailable = false

			stored, ok, loadErr := m.backup.Load()
			if loadErr != nil {
				log.Printf("could not read local backup: %v", loadErr)
			}
			if ok && loadErr == nil {
				m.snapshot = stored
				m.source = SourceLocal
			} else {
				m.snapshot = content.Default()
				m.source = SourceDefault
			}
		}
		m.mu.Unlock()

		if err == nil {
			if saveErr := m.backup.Save(doc); saveErr != nil {
				log.Printf("could not persist local backup: %v", saveErr)
			}
		}

		close(m.ready)
	})

	return m.Snapshot()
}

// Ready 返回就绪信号通道，初始快照解析完成后关闭且只关闭一次。
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

// Snapshot 返回当前内存快照。
func (m *Manager) Snapshot() content.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// Source 返回当前快照的来源。
func (m *Manager) Source() Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// APIAvailable 报告最近一次初始化或探活时后端是否可用。
func (m *Manager) APIAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiAvailable
}

// CheckAPI 主动探测后端健康状态并刷新可用性标记。
func (m *Manager) CheckAPI(ctx context.Context) bool {
	err := m.api.Health(ctx)

	m.mu.Lock()
	m.apiAvailable = err == nil
	available := m.apiAvailable
	m.mu.Unlock()

	return available
}

// UpdateSection 乐观更新：先改内存快照并立即写本地备份，
// 后端可用时再上行；上行失败返回错误但保留本地修改。
func (m *Manager) UpdateSection(ctx context.Context, name string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode section %s: %w", name, err)
	}

	m.mu.Lock()
	if err := content.ApplySection(&m.snapshot, name, raw); err != nil {
		m.mu.Unlock()
		return err
	}
	snapshot := m.snapshot
	available := m.apiAvailable
	m.mu.Unlock()

	if err := m.backup.Save(snapshot); err != nil {
		log.Printf("could not persist local backup: %v", err)
	}

	if !available {
		return nil
	}

	if err := m.api.ReplaceSection(ctx, name, raw); err != nil {
		return fmt.Errorf("push section %s: %w", name, err)
	}
	return nil
}

// Save 整体采纳 doc 为新快照并全量上行。后台面板保存全部
// 修改时走这条路径；上行失败同样保留本地状态。
func (m *Manager) Save(ctx context.Context, doc content.Document) error {
	if err := m.backup.Save(doc); err != nil {
		log.Printf("could not persist local backup: %v", err)
	}

	m.mu.Lock()
	m.snapshot = doc
	available := m.apiAvailable
	m.mu.Unlock()

	if !available {
		return nil
	}

	stored, err := m.api.ReplaceContent(ctx, doc)
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}

	m.adopt(stored, SourceAPI)
	return nil
}

// ResetToDefault 清空本地备份、把快照重置为默认内容；
// 后端可用时同步触发服务端重置，并采纳服务端返回的文档。
func (m *Manager) ResetToDefault(ctx context.Context) (content.Document, error) {
	if err := m.backup.Clear(); err != nil {
		log.Printf("could not clear local backup: %v", err)
	}

	m.mu.Lock()
	m.snapshot = content.Default()
	m.source = SourceDefault
	available := m.apiAvailable
	m.mu.Unlock()

	if !available {
		return m.Snapshot(), nil
	}

	doc, err := m.api.Reset(ctx)
	if err != nil {
		return m.Snapshot(), fmt.Errorf("reset on API: %w", err)
	}

	m.mu.Lock()
	m.snapshot = doc
	m.source = SourceAPI
	m.mu.Unlock()

	return doc, nil
}

// Export 返回当前快照的美化 JSON 序列化结果，无副作用。
func (m *Manager) Export() ([]byte, error) {
	snapshot := m.Snapshot()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// WriteExport 把导出结果写到 dir 下的固定文件名并返回完整路径。
func (m *Manager) WriteExport(dir string) (string, error) {
	data, err := m.Export()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ExportFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}
	return path, nil
}

// Import 解析序列化文档并采纳为新快照。解析失败返回
// 包装了 ErrParse 的错误且不改动任何状态。后端可用时全量
// 上行并采纳服务端返回的文档；上行失败时保留本地采纳结果。
func (m *Manager) Import(ctx context.Context, data []byte) error {
	var doc content.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := m.backup.Save(doc); err != nil {
		log.Printf("could not persist local backup: %v", err)
	}

	m.mu.Lock()
	available := m.apiAvailable
	m.mu.Unlock()

	if !available {
		m.adopt(doc, SourceLocal)
		return nil
	}

	stored, err := m.api.Import(ctx, data)
	if err != nil {
		m.adopt(doc, SourceLocal)
		return fmt.Errorf("import to API: %w", err)
	}

	m.adopt(stored, SourceAPI)
	return nil
}

func (m *Manager) adopt(doc content.Document, source Source) {
	m.mu.Lock()
	m.snapshot = doc
	m.source = source
	m.mu.Unlock()
}
