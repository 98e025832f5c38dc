package lane

import "golang.org/x/sys/cpu"

// Target names the widest instruction set of the host that a four lane
// register of float32 or float64 maps onto.
func Target() string {
	switch {
	case cpu.X86.HasAVX:
		return "avx"
	case cpu.X86.HasSSE41:
		return "sse4.1"
	case cpu.X86.HasSSE2:
		return "sse2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	}
	return "scalar"
}
