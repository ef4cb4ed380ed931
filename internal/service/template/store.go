package template

import (
	"errors"
	"sort"
	"sync"

	"github.com/lpranav17/LCMS-Automation/internal/model"
)

// ErrNotFound 模板不存在
var ErrNotFound = errors.New("template not found")

// Store 模板存取接口
// 引擎与处理器只依赖该接口，测试用内存实现，不触碰文件系统
type Store interface {
	List() ([]string, error)
	Load(name string) (*model.Template, error)
	Save(name string, tpl *model.Template) error
	Delete(name string) error
}

// MemoryStore 内存模板存储（测试与预览场景）
type MemoryStore struct {
	items map[string]model.Template
	mu    sync.RWMutex
}

// NewMemoryStore 创建内存模板存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]model.Template)}
}

// List 按名称排序返回全部模板名
func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load 按名称加载模板
func (s *MemoryStore) Load(name string) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tpl, ok := s.items[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &tpl, nil
}

// Save 保存模板（覆盖同名）
func (s *MemoryStore) Save(name string, tpl *model.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[name] = *tpl
	return nil
}

// Delete 删除模板，不存在时返回 ErrNotFound
func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[name]; !ok {
		return ErrNotFound
	}
	delete(s.items, name)
	return nil
}
