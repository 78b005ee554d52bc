package types

import "strings"

// ProjectName is the base distribution name and the root package directory.
const ProjectName = "onnxruntime"

// GPUSuffix is appended to ProjectName for CUDA-enabled builds.
const GPUSuffix = "-gpu"

// OS is the operating-system family a package is assembled for.
type OS int

const (
	// Other covers every platform without a dedicated artifact table.
	Other OS = iota
	Linux
	Windows
)

func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	default:
		return "other"
	}
}

// ParseOS maps a runtime.GOOS style name to an OS family.
// Unknown names map to Other.
func ParseOS(goos string) OS {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Other
	}
}

// BuildContext is the immutable input driving artifact selection.
// It is built once per invocation and passed by value.
type BuildContext struct {
	// Target operating-system family.
	// example: linux
	OS OS `json:"os"`
	// True for the CUDA-enabled variant (--use_cuda).
	// example: false
	GPUEnabled bool `json:"gpu_enabled"`
}

// Variant returns "gpu" or "cpu".
func (c BuildContext) Variant() string {
	if c.GPUEnabled {
		return "gpu"
	}
	return "cpu"
}

// ArtifactCandidate is one binary file that might belong in the package.
type ArtifactCandidate struct {
	// Path relative to the root package directory.
	// example: capi/libiomp5.so
	RelativePath string `json:"relative_path"`
	// Whether the artifact is expected for this platform. Missing files are
	// still tolerated.
	Required bool `json:"required"`
}
