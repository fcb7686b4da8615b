// Package fingerprint computes the stable finding identity used by
// baselines, suppression and editor code actions.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// Prefix precedes the hex digest in every rendered fingerprint and secret hash.
const Prefix = "sha256:"

// sep prevents prefix ambiguity between the hashed components.
const sep = 0x1F

// HashSecret returns the SHA-256 digest of the raw secret bytes.
func HashSecret(secret []byte) [sha256.Size]byte {
	return sha256.Sum256(secret)
}

// SecretHashHex renders a secret digest as "sha256:<hex>" for baseline
// entries and triple matching.
func SecretHashHex(digest [sha256.Size]byte) string {
	return Prefix + hex.EncodeToString(digest[:])
}

// Compute returns the fingerprint for (pattern id, normalized path, secret
// digest): "sha256:" + hex of sha256(id || 0x1F || path || 0x1F || digest).
// It is a pure function of its inputs; identical inputs produce identical
// fingerprints on every platform.
func Compute(patternID, normalizedPath string, secretDigest [sha256.Size]byte) string {
	h := sha256.New()
	h.Write([]byte(patternID))
	h.Write([]byte{sep})
	h.Write([]byte(normalizedPath))
	h.Write([]byte{sep})
	h.Write(secretDigest[:])
	return Prefix + hex.EncodeToString(h.Sum(nil))
}

// NormalizePath converts path to forward slashes, strips a leading "./",
// and makes it relative to root when root is non-empty and contains it.
func NormalizePath(path, root string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	p := strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(p, "./")
}
