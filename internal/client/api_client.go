package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/starcomputers/internal/content"
)

// ErrBackendUnavailable 表示后端不可达或返回了不可用的响应。
// 调用方据此降级到本地备份或默认内容，而不是硬失败。
var ErrBackendUnavailable = errors.New("content backend unavailable")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 封装内容服务的 HTTP 契约。
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient 构造指向 baseURL 的内容服务客户端，
// baseURL 形如 http://localhost:5000/api。
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，主要面向测试场景。
func (c *Client) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.httpClient = &http.Client{}
		return
	}
	c.httpClient = client
}

// messageEnvelope 对应服务端 {message, data} 形式的响应体。
type messageEnvelope struct {
	Message string           `json:"message"`
	Data    content.Document `json:"data"`
}

// FetchContent 拉取整站内容文档，服务端不存在时会惰性创建。
func (c *Client) FetchContent(ctx context.Context) (content.Document, error) {
	var doc content.Document
	if err := c.do(ctx, http.MethodGet, "/content", nil, &doc); err != nil {
		return content.Document{}, err
	}
	return doc, nil
}

// ReplaceContent 整体上传文档并返回服务端存储结果。
func (c *Client) ReplaceContent(ctx context.Context, doc content.Document) (content.Document, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return content.Document{}, fmt.Errorf("encode content document: %w", err)
	}

	var stored content.Document
	if err := c.do(ctx, http.MethodPut, "/content", body, &stored); err != nil {
		return content.Document{}, err
	}
	return stored, nil
}

// ReplaceSection 上传单个区块的完整值。
func (c *Client) ReplaceSection(ctx context.Context, name string, value json.RawMessage) error {
	return c.do(ctx, http.MethodPut, "/content/"+name, value, nil)
}

// Reset 恢复服务端内容为默认文档并返回新文档。
func (c *Client) Reset(ctx context.Context) (content.Document, error) {
	var envelope messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/content/reset", nil, &envelope); err != nil {
		return content.Document{}, err
	}
	return envelope.Data, nil
}

// Import 全量导入文档，服务端删后重建并返回新文档。
func (c *Client) Import(ctx context.Context, raw json.RawMessage) (content.Document, error) {
	var envelope messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/content/import", raw, &envelope); err != nil {
		return content.Document{}, err
	}
	return envelope.Data, nil
}

// Health 探测后端是否可用。
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do 发起一次请求并按需解码响应体。传输失败、非 2xx 状态
// 和响应体解码失败统一包装为 ErrBackendUnavailable。
func (c *Client) do(ctx context.Context, method, path string, body []byte, dst interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(detail))
		if msg != "" {
			return fmt.Errorf("%w: %s %s returned %s: %s", ErrBackendUnavailable, method, path, resp.Status, msg)
		}
		return fmt.Errorf("%w: %s %s returned %s", ErrBackendUnavailable, method, path, resp.Status)
	}

	if dst == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response of %s %s: %v", ErrBackendUnavailable, method, path, err)
	}
	return nil
}
