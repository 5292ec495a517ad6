package main

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestBuildVersion(t *testing.T) {
	restore := func() { Version, CommitSHA = "", "" }

	t.Run("Defaults", func(t *testing.T) {
		defer restore()
		assert.Equal(t, "dev", buildVersion())
	})

	t.Run("VersionOnly", func(t *testing.T) {
		defer restore()
		Version = "1.2.3"
		assert.Equal(t, "1.2.3", buildVersion())
	})

	t.Run("VersionWithCommit", func(t *testing.T) {
		defer restore()
		Version = "1.2.3"
		CommitSHA = "abc1234"
		assert.Equal(t, "1.2.3 (abc1234)", buildVersion())
	})
}
