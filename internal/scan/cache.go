package scan

import (
	"strconv"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/spikermint/vet/internal/types"
)

// maxCacheEntries bounds the buffer cache; editor sessions rarely keep more
// files open than this.
const maxCacheEntries = 256

// resultCache re-serves findings for unchanged buffers so interactive
// re-scans stay within the editor latency budget.
type resultCache struct {
	mu      sync.Mutex
	entries map[string][]types.Finding
}

func newResultCache() *resultCache {
	return &resultCache{entries: map[string][]types.Finding{}}
}

func cacheKey(path string, data []byte) string {
	return path + ":" + strconv.FormatUint(xxhash.Sum64(data), 16)
}

func (c *resultCache) get(path string, data []byte) ([]types.Finding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fs, ok := c.entries[cacheKey(path, data)]
	return fs, ok
}

func (c *resultCache) put(path string, data []byte, fs []types.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= maxCacheEntries {
		c.entries = map[string][]types.Finding{}
	}
	c.entries[cacheKey(path, data)] = fs
}
