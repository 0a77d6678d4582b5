//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !rundown_disable_padding && !rundown_enable_padding

package opt

// Padded_ reports whether Pad_ occupies a full cache line.
const Padded_ = true

// Pad_ separates hot atomic words that live next to each other in memory.
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type Pad_ [CacheLineSize_]byte
