package artifacts

import (
	"path"

	"ortwheel/pkg/types"
)

// BindingDir is the binding subpackage, relative to the root package
// directory, that holds the native libraries.
const BindingDir = "capi"

// Table lists the candidate library filenames per platform, in the order they
// appear in the manifest. New platforms are supported by adding a row.
var Table = map[types.OS][]string{
	types.Linux: {
		"onnxruntime_pybind11_state.so",
		"libmkldnn.so.0",
		"libmkldnn.so",
		"libmklml_intel.so",
		"libiomp5.so",
	},
	types.Windows: {
		"onnxruntime_pybind11_state.pyd",
		"mkldnn.dll",
		"mklml.dll",
		"libiomp5md.dll",
	},
}

// FallbackOS is used for platforms without a row in Table.
const FallbackOS = types.Windows

// rowFor returns the filenames for os and whether a dedicated row exists.
func rowFor(os types.OS) ([]string, bool) {
	if row, ok := Table[os]; ok {
		return row, true
	}
	return Table[FallbackOS], false
}

// Candidates returns the candidate artifacts for os. It does no I/O.
func Candidates(os types.OS) []types.ArtifactCandidate {
	row, _ := rowFor(os)
	out := make([]types.ArtifactCandidate, 0, len(row))
	for _, name := range row {
		out = append(out, types.ArtifactCandidate{
			RelativePath: path.Join(BindingDir, name),
			Required:     true,
		})
	}
	return out
}

// Supported reports whether os has its own row in Table.
func Supported(os types.OS) bool {
	_, ok := Table[os]
	return ok
}
