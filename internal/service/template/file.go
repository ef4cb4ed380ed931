package template

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

const schemaVersion = 1

// requiredKeys 模板条目必须包含的键，缺失即拒绝加载
var requiredKeys = []string{"instrument", "sampleTypes"}

// document 模板文件结构：<dataDir>/templates/templates.json
// 条目保持原始 JSON，加载时先校验必需键再解码，避免部分装载
type document struct {
	SchemaVersion int                        `json:"schemaVersion"`
	Items         map[string]json.RawMessage `json:"items"`
}

// FileStore 文件模板存储，写入采用临时文件 + 重命名保证原子性
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore 创建文件模板存储
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "templates.json")}
}

// readDocument 读取并解析模板文件
// 文件不存在时返回空文档；无法解析时返回 TemplateFormatError
func (s *FileStore) readDocument() (*document, error) {
	doc := &document{
		SchemaVersion: schemaVersion,
		Items:         make(map[string]json.RawMessage),
	}
	if !fileExists(s.path) {
		return doc, nil
	}
	if err := readJSON(s.path, doc); err != nil {
		return nil, &model.TemplateFormatError{Reason: err.Error()}
	}
	if doc.Items == nil {
		doc.Items = make(map[string]json.RawMessage)
	}
	return doc, nil
}

// List 按名称排序返回全部模板名
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Items))
	for name := range doc.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load 按名称加载模板
// 缺少必需键的条目返回 TemplateFormatError，不做部分装载
func (s *FileStore) Load(name string) (*model.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	raw, ok := doc.Items[name]
	if !ok {
		return nil, ErrNotFound
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, &model.TemplateFormatError{Name: name, Reason: err.Error()}
	}
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := keys[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &model.TemplateFormatError{Name: name, Missing: missing}
	}

	var tpl model.Template
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return nil, &model.TemplateFormatError{Name: name, Reason: err.Error()}
	}
	return &tpl, nil
}

// Save 保存模板（覆盖同名）
// 失败时原文件保持不变
func (s *FileStore) Save(name string, tpl *model.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	saved := *tpl
	if saved.UpdatedAt.IsZero() {
		saved.UpdatedAt = time.Now()
	}
	raw, err := json.Marshal(&saved)
	if err != nil {
		return err
	}
	doc.Items[name] = raw
	return writeJSONAtomic(s.path, doc)
}

// Delete 删除模板，不存在时返回 ErrNotFound
func (s *FileStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	if _, ok := doc.Items[name]; !ok {
		return ErrNotFound
	}
	delete(doc.Items, name)
	return writeJSONAtomic(s.path, doc)
}
