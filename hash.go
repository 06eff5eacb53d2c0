package calcpro

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"
)

// Default size for the buffer used when hashing values
const defaultBufferSize = 4 * 1024 // 4KB

// bufferPool is a pool of byte slices used while hashing
var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// hashContent writes the content from a reader into h.
func hashContent(content io.Reader, h hash.Hash) error {
	bufPtr := bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer bufferPool.Put(bufPtr)

	_, err := io.CopyBuffer(h, content, buffer)
	if err != nil {
		return fmt.Errorf("failed to copy content: %w", err)
	}
	return nil
}

// checksum returns the hex-encoded hash of value.
func (s *Store) checksum(value []byte) (string, error) {
	h := s.hashFunc()
	if err := hashContent(bytes.NewReader(value), h); err != nil {
		return "", fmt.Errorf("failed to hash value: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
