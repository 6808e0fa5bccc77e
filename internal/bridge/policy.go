package bridge

import (
	"strings"
	"sync"

	"github.com/textshop/inlay/internal/application/port"
)

const (
	sandboxToken      = "sandbox"
	allowScriptsToken = "allow-scripts"
)

// SandboxBlocksScripts reports whether a Content-Security-Policy header
// value suppresses script execution for the responding page.
//
// The sandbox directive is recognized only at a token boundary: start of
// string, or preceded by a space or semicolon. That keeps directive names
// merely containing "sandbox" from triggering a false positive. Once a
// sandbox directive is found, scripting stays blocked unless an
// allow-scripts token appears after it in the same header value.
//
// This is a deliberate heuristic, not a directive-list parser; the
// allow-scripts scan is a plain substring search.
func SandboxBlocksScripts(csp string) bool {
	idx := sandboxIndex(csp)
	if idx < 0 {
		return false
	}
	rest := csp[idx+len(sandboxToken):]
	return !strings.Contains(rest, allowScriptsToken)
}

// sandboxIndex returns the offset of the first boundary-recognized sandbox
// token, or -1.
func sandboxIndex(csp string) int {
	from := 0
	for {
		i := strings.Index(csp[from:], sandboxToken)
		if i < 0 {
			return -1
		}
		abs := from + i
		if abs == 0 || csp[abs-1] == ' ' || csp[abs-1] == ';' {
			return abs
		}
		from = abs + len(sandboxToken)
	}
}

// PolicyState maps navigated URLs to a "scripting blocked" flag, populated
// at each completed navigation response. Reads and writes happen on the
// UI-owning thread; the mutex covers test access and the unbounded map
// backend.
type PolicyState struct {
	mu    sync.RWMutex
	store port.Cache[string, bool]
}

// NewPolicyState creates a policy state backed by the given cache. A nil
// cache selects an unbounded map, preserving the original no-eviction
// behavior.
func NewPolicyState(store port.Cache[string, bool]) *PolicyState {
	if store == nil {
		store = make(mapStore)
	}
	return &PolicyState{store: store}
}

// SetBlocked records the scripting decision for a URL.
func (s *PolicyState) SetBlocked(uri string, blocked bool) {
	if uri == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Set(uri, blocked)
}

// Blocked reports whether scripting is suppressed for a URL. URLs never
// seen by a response decision default to allowed.
func (s *PolicyState) Blocked(uri string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blocked, ok := s.store.Get(uri)
	return ok && blocked
}

// Len returns the number of tracked URLs.
func (s *PolicyState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Len()
}

// Rebound swaps the backing store, dropping accumulated entries. Used when
// the configured capacity changes at runtime; entries repopulate on the
// next response decisions.
func (s *PolicyState) Rebound(store port.Cache[string, bool]) {
	if store == nil {
		store = make(mapStore)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
}

// mapStore is the unbounded backend.
type mapStore map[string]bool

func (m mapStore) Get(key string) (bool, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Set(key string, value bool) { m[key] = value }

func (m mapStore) Len() int { return len(m) }
