package pipeline

import (
	"crypto/rand"
	"sync"
	"time"
)

// Job IDs are 26-character Crockford Base32 ULIDs: 48-bit millisecond
// timestamp followed by 80 bits of randomness, with a sequence counter
// folded in so IDs created within the same millisecond stay unique.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

// NewJobID returns a fresh, time-ordered job identifier.
func NewJobID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	for i := 0; i < 6; i++ {
		b[i] = byte(ts >> (40 - 8*i))
	}
	rand.Read(b[6:])
	b[6] = byte(lastSeq >> 8)
	b[7] = byte(lastSeq)

	return encodeBase32(b)
}

// encodeBase32 packs 128 bits into 26 Crockford Base32 characters by
// walking the bytes as a bit stream, most significant bits first. The
// stream is left-padded with two zero bits (26*5 = 130) so the timestamp
// stays in the leading characters.
func encodeBase32(b [16]byte) string {
	var out [26]byte
	bitPos := -2
	for i := range out {
		var v byte
		for j := 0; j < 5; j++ {
			v <<= 1
			p := bitPos + j
			if p >= 0 && b[p/8]&(1<<(7-p%8)) != 0 {
				v |= 1
			}
		}
		out[i] = crockford[v]
		bitPos += 5
	}
	return string(out[:])
}
