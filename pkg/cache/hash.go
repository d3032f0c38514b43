package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

type fileStamp struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mtime"`
}

// SourceKey fingerprints an ingest run from the raw manifest and the size
// and modification time of every source file it names. Any change to
// either yields a new key. A missing source fails with FILE_NOT_FOUND.
func SourceKey(manifest []byte, paths ...string) (string, error) {
	stamps := make([]fileStamp, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "source %s", p)
		}
		stamps = append(stamps, fileStamp{Path: p, Size: info.Size(), ModTime: info.ModTime().UnixNano()})
	}
	return hashKey("graph", Hash(manifest), stamps), nil
}
