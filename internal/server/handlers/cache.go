package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lpranav17/LCMS-Automation/internal/service/namelist"
)

// 下载令牌与上传名单的有效期，过期条目在每次存取时清理
const (
	exportTTL = 30 * time.Minute
	uploadTTL = 30 * time.Minute
)

// exportFile 等待下载的导出文件
type exportFile struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

type exportEntry struct {
	file      *exportFile
	expiresAt time.Time
}

// exportStore 导出文件缓存：令牌带有效期，避免长会话下字节在内存中无限累积
type exportStore struct {
	mu    sync.Mutex
	items map[string]exportEntry
}

func newExportStore() *exportStore {
	return &exportStore{items: make(map[string]exportEntry)}
}

// put 缓存导出文件并返回下载令牌
func (s *exportStore) put(file *exportFile, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token := uuid.New().String()
	s.items[token] = exportEntry{
		file:      file,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

// get 按令牌取导出文件，过期条目视同不存在并即刻删除
func (s *exportStore) get(token string) (*exportFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.purgeExpiredLocked(now)

	entry, ok := s.items[token]
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		delete(s.items, token)
		return nil, false
	}
	return entry.file, true
}

func (s *exportStore) purgeExpiredLocked(now time.Time) {
	for token, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, token)
		}
	}
}

func (s *exportStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type uploadEntry struct {
	list      *namelist.List
	expiresAt time.Time
}

// uploadStore 已上传名单缓存，键为名单 id，同样带有效期
type uploadStore struct {
	mu    sync.Mutex
	items map[string]uploadEntry
}

func newUploadStore() *uploadStore {
	return &uploadStore{items: make(map[string]uploadEntry)}
}

// put 缓存已解析的名单，键为其自带的 id
func (s *uploadStore) put(list *namelist.List, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	s.items[list.ID] = uploadEntry{
		list:      list,
		expiresAt: time.Now().Add(ttl),
	}
}

// get 按 id 取名单，过期条目视同不存在并即刻删除
func (s *uploadStore) get(id string) (*namelist.List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.purgeExpiredLocked(now)

	entry, ok := s.items[id]
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		delete(s.items, id)
		return nil, false
	}
	return entry.list, true
}

func (s *uploadStore) purgeExpiredLocked(now time.Time) {
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
		}
	}
}

func (s *uploadStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
