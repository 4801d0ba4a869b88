package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey_Unique(t *testing.T) {
	// Same author, same second: keys must still never collide
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		key := GenerateKey("posts", 42, now)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate key %q", key)
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestGenerateKey_Format(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	key := GenerateKey("posts", 7, now)

	assert.True(t, strings.HasPrefix(key, "posts/7_1748779200_"))
	assert.True(t, strings.HasSuffix(key, ".txt"))
}

func TestParentDir(t *testing.T) {
	assert.Equal(t, "posts", ParentDir("posts/7_1748779200_abc.txt"))
}
