package ledger

import (
	"iter"
	"strings"
)

// Account is a hierarchical account identifier with "/" as the hierarchy
// delimiter, such as "assets/bank/checking". Any prefix ending exactly at a
// "/" boundary names an ancestor node. The character set is deliberately
// unrestricted.
type Account string

// MatchesPrefix reports whether the account is the given prefix itself or
// falls under it in the hierarchy. A single trailing "/" on the prefix is
// ignored, so "assets/" matches the same accounts as "assets".
func (a Account) MatchesPrefix(prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if string(a) == prefix {
		return true
	}
	return strings.HasPrefix(string(a), prefix+"/")
}

// Name returns the last path segment of the account.
func (a Account) Name() string {
	if i := strings.LastIndexByte(string(a), '/'); i >= 0 {
		return string(a[i+1:])
	}
	return string(a)
}

// Parent returns the account one level up the hierarchy.
// The second return value is false for top-level accounts.
func (a Account) Parent() (Account, bool) {
	i := strings.LastIndexByte(string(a), '/')
	if i < 0 {
		return "", false
	}
	return a[:i], true
}

// Parents iterates over the ancestors of the account, from its direct
// parent up to the top-level segment. The account itself is not included.
func (a Account) Parents() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		current := a
		for {
			parent, ok := current.Parent()
			if !ok {
				return
			}
			if !yield(parent) {
				return
			}
			current = parent
		}
	}
}

// WalkNodes iterates over every node on the account's path, from the
// top-level segment down to the account itself.
func (a Account) WalkNodes() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for i := 0; i < len(a); i++ {
			if a[i] == '/' {
				if !yield(a[:i]) {
					return
				}
			}
		}
		yield(a)
	}
}

// CommonParent returns the deepest account that is an ancestor of both a
// and other, not counting the accounts themselves. The second return value
// is false when the accounts share no top-level segment.
func (a Account) CommonParent(other Account) (Account, bool) {
	var common Account
	found := false

	next, stop := iter.Pull(other.WalkNodes())
	defer stop()

	for node := range a.WalkNodes() {
		otherNode, ok := next()
		if !ok || node != otherNode || node == a || node == other {
			break
		}
		common, found = node, true
	}

	return common, found
}
