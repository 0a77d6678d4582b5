//go:build rundown_disable_padding && !rundown_enable_padding

package opt

// Padded_ reports whether Pad_ occupies a full cache line.
const Padded_ = false

// Pad_ is empty: padding is force-disabled via the rundown_disable_padding
// build tag.
// Use: go build -tags=rundown_disable_padding
type Pad_ struct{}
