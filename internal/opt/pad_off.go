//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !rundown_disable_padding && !rundown_enable_padding

package opt

// Padded_ reports whether Pad_ occupies a full cache line.
const Padded_ = false

// Pad_ is empty by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type Pad_ struct{}
