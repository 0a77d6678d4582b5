//go:build rundown_enable_padding

package opt

// Padded_ reports whether Pad_ occupies a full cache line.
const Padded_ = true

// Pad_ separates hot atomic words that live next to each other in memory.
// Padding is force-enabled via the rundown_enable_padding build tag.
// Use: go build -tags=rundown_enable_padding
type Pad_ [CacheLineSize_]byte
