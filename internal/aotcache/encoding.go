// SPDX-License-Identifier: MPL-2.0

package aotcache

// alphabet is the 56-character, case-sensitive digit set used to encode
// cache identities into filenames. It is base62 minus the visually
// ambiguous characters (0/O/o and 1/l/I), keeping encoded file sizes and
// timestamps short, unambiguous, and safe on every filesystem.
const alphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

const alphabetBase = uint64(len(alphabet))

// encodeKey renders v in the fixed alphabet, most significant digit first.
// Distinct inputs always produce distinct outputs, so joining the encoded
// size and modification time with a separator keeps the combined cache key
// injective over all (size, mtime) pairs below 2^63.
func encodeKey(v uint64) string {
	if v == 0 {
		return alphabet[:1]
	}
	// 64-bit values need at most 12 digits in base 56.
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = alphabet[v%alphabetBase]
		v /= alphabetBase
	}
	return string(buf[i:])
}
