package partition

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// HashFunc returns a digest of at least four bytes.
type HashFunc func(data []byte) []byte

// MD5 hashes data with MD5.
func MD5(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

// Murmur3 hashes data with 128-bit murmur3, both halves little-endian.
func Murmur3(data []byte) []byte {
	h1, h2 := murmur3.Sum128(data)
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[:8], h1)
	binary.LittleEndian.PutUint64(out[8:], h2)
	return out
}

// HashByName maps a configuration value to a hash function.
// Unknown names report false.
func HashByName(name string) (HashFunc, bool) {
	switch name {
	case "", "md5":
		return MD5, true
	case "murmur3":
		return Murmur3, true
	default:
		return nil, false
	}
}
