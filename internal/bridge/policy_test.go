package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSandboxBlocksScripts(t *testing.T) {
	tests := []struct {
		name    string
		csp     string
		blocked bool
	}{
		{"empty header", "", false},
		{"no sandbox", "default-src 'self'", false},
		{"bare sandbox at start", "sandbox", true},
		{"sandbox after semicolon", "default-src 'self';sandbox", true},
		{"sandbox after space", "default-src 'self'; sandbox allow-forms", true},
		{"embedded substring ignored", "report-to mysandbox-endpoint", false},
		{"allow-scripts after sandbox", "sandbox allow-scripts", false},
		{"allow-scripts among other tokens", "sandbox allow-forms allow-scripts allow-popups", false},
		{"allow-scripts before sandbox", "allow-scripts; sandbox", true},
		{"later boundary match", "unsandboxed; sandbox", true},
		{"sandbox then unrelated directive", "sandbox; script-src 'none'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocked, SandboxBlocksScripts(tt.csp))
		})
	}
}

func TestPolicyStateDefaults(t *testing.T) {
	s := NewPolicyState(nil)

	assert.False(t, s.Blocked("https://example.org/"), "unseen URLs default to allowed")
	assert.Equal(t, 0, s.Len())
}

func TestPolicyStateSetAndOverwrite(t *testing.T) {
	s := NewPolicyState(nil)

	s.SetBlocked("https://example.org/a", true)
	assert.True(t, s.Blocked("https://example.org/a"))

	// A later navigation to the same URL without a sandbox directive
	// unblocks it.
	s.SetBlocked("https://example.org/a", false)
	assert.False(t, s.Blocked("https://example.org/a"))
	assert.Equal(t, 1, s.Len())
}

func TestPolicyStateIgnoresEmptyURI(t *testing.T) {
	s := NewPolicyState(nil)

	s.SetBlocked("", true)
	assert.Equal(t, 0, s.Len())
}

func TestPolicyStateRebound(t *testing.T) {
	s := NewPolicyState(nil)
	s.SetBlocked("https://example.org/a", true)

	s.Rebound(nil)

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Blocked("https://example.org/a"))
}
