// Package memory is an in-process kv.Medium with an optional byte quota,
// behaving like browser local storage.
package memory

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"budgetbook/internal/kv"
)

// ErrDisabled is returned by every operation while the medium is disabled.
var ErrDisabled = errors.New("memory medium disabled")

// Medium stores strings in a map. Quota counts len(key)+len(value) over all
// entries; zero means unlimited.
type Medium struct {
	mu       sync.Mutex
	items    map[string]string
	quota    int
	used     int
	disabled bool
}

var _ kv.Medium = (*Medium)(nil)

func New(quota int) *Medium {
	return &Medium{items: make(map[string]string), quota: quota}
}

// NewFromSeed returns a medium pre-populated with items, which tests use to
// simulate values left behind by an earlier session.
func NewFromSeed(quota int, items map[string]string) *Medium {
	m := New(quota)
	for k, v := range items {
		m.items[k] = v
		m.used += len(k) + len(v)
	}
	return m
}

// NewFromFile seeds the medium from a file of "key=value" lines. Blank lines
// and lines starting with # are skipped; a missing file yields an empty
// medium.
func NewFromFile(path string, quota int) *Medium {
	m := New(quota)
	f, err := os.Open(path)
	if err != nil {
		return m
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if old, exists := m.items[k]; exists {
			m.used -= len(k) + len(old)
		}
		m.items[k] = v
		m.used += len(k) + len(v)
	}
	return m
}

// SetDisabled makes every call fail, like storage blocked by the browser.
func (m *Medium) SetDisabled(disabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = disabled
}

func (m *Medium) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return "", false, ErrDisabled
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Medium) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrDisabled
	}
	next := m.used + len(key) + len(value)
	if old, ok := m.items[key]; ok {
		next -= len(key) + len(old)
	}
	if m.quota > 0 && next > m.quota {
		return kv.ErrQuotaExceeded
	}
	m.items[key] = value
	m.used = next
	return nil
}

func (m *Medium) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrDisabled
	}
	if old, ok := m.items[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.items, key)
	}
	return nil
}

// Keys lists stored keys in sorted order.
func (m *Medium) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.items))
	for k := range m.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Used returns the bytes counted against the quota.
func (m *Medium) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used
}
