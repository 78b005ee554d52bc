// Package buildctx derives the BuildContext for one invocation: the GPU flag
// is pulled out of argv before any other parsing, and the OS family comes from
// the host or an explicit override.
package buildctx

import (
	"runtime"

	"ortwheel/pkg/types"
)

// GPUFlag selects the CUDA-enabled distribution. It is consumed before the
// regular flag parser runs and never reaches it.
const GPUFlag = "--use_cuda"

// ExtractGPUFlag reports whether GPUFlag is present and returns the remaining
// arguments as a new slice. All occurrences before a bare "--" are removed;
// the terminator and everything after it pass through. args is not modified.
func ExtractGPUFlag(args []string) (bool, []string) {
	gpu := false
	rest := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if a == GPUFlag {
			gpu = true
			continue
		}
		rest = append(rest, a)
	}
	return gpu, rest
}

// Detect builds a context for the given GOOS-style name.
func Detect(goos string, gpu bool) types.BuildContext {
	return types.BuildContext{OS: types.ParseOS(goos), GPUEnabled: gpu}
}

// Host builds a context for the running platform.
func Host(gpu bool) types.BuildContext { return Detect(runtime.GOOS, gpu) }
