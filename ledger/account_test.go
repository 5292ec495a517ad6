package ledger_test

import (
	"slices"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/ledger"
)

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		account  ledger.Account
		prefix   string
		expected bool
	}{
		{"a/b/c", "a/b", true},
		{"a/b/c", "a/b/c", true},
		{"a/b/c", "a", true},
		{"a/b/c", "a/", true},
		{"a/b/c", "a/bc", false},
		{"a/bc", "a/b", false},
		{"a", "a/b", false},
		{"assets/bank/checking", "assets/bank", true},
		{"assets/bank2", "assets/bank", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.account)+"~"+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.MatchesPrefix(tt.prefix))
		})
	}
}

func TestAccountName(t *testing.T) {
	assert.Equal(t, "c", ledger.Account("a/b/c").Name())
	assert.Equal(t, "a", ledger.Account("a").Name())
	assert.Equal(t, "checking", ledger.Account("assets/bank/checking").Name())
}

func TestAccountParent(t *testing.T) {
	parent, ok := ledger.Account("a/b").Parent()
	assert.True(t, ok)
	assert.Equal(t, ledger.Account("a"), parent)

	parent, ok = ledger.Account("a/b/c").Parent()
	assert.True(t, ok)
	assert.Equal(t, ledger.Account("a/b"), parent)

	_, ok = ledger.Account("a").Parent()
	assert.False(t, ok)
}

func TestWalkNodes(t *testing.T) {
	nodes := slices.Collect(ledger.Account("a/b/c").WalkNodes())
	assert.Equal(t, []ledger.Account{"a", "a/b", "a/b/c"}, nodes)

	nodes = slices.Collect(ledger.Account("a").WalkNodes())
	assert.Equal(t, []ledger.Account{"a"}, nodes)

	// Restartable: a second pass yields the same nodes.
	seq := ledger.Account("x/y").WalkNodes()
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestParents(t *testing.T) {
	parents := slices.Collect(ledger.Account("a/b/c").Parents())
	assert.Equal(t, []ledger.Account{"a/b", "a"}, parents)

	assert.Equal(t, 0, len(slices.Collect(ledger.Account("a").Parents())))
}

func TestCommonParent(t *testing.T) {
	tests := []struct {
		a, b     ledger.Account
		expected ledger.Account
		found    bool
	}{
		{"a/b/c", "a/b/d", "a/b", true},
		{"a/b/c", "a/x", "a", true},
		{"a/b", "a/b/c", "a", true},
		{"a/b", "a/b", "a", true},
		{"a/b", "x/y", "", false},
		{"a", "a/b", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"~"+string(tt.b), func(t *testing.T) {
			common, found := tt.a.CommonParent(tt.b)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, common)
			}
		})
	}
}
