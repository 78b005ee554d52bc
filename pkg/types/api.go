package types

// Manifest is the assembled description of a distributable package, handed to
// the packaging toolchain. Field names follow setuptools keywords where one
// exists.
type Manifest struct {
	// Published distribution name.
	// example: onnxruntime-gpu
	DistributionName string `json:"distribution_name" yaml:"distribution_name" toml:"distribution_name"`
	// example: 0.1.3
	Version string `json:"version" yaml:"version" toml:"version"`
	// One-line summary.
	Description string `json:"description" yaml:"description" toml:"description"`
	// Long-form description, injected verbatim from the description file.
	LongDescription string `json:"long_description" yaml:"long_description" toml:"long_description"`
	Author          string `json:"author" yaml:"author" toml:"author"`
	AuthorEmail     string `json:"author_email" yaml:"author_email" toml:"author_email"`
	License         string `json:"license" yaml:"license" toml:"license"`
	// False because the package carries platform-specific native code.
	RootIsPure bool `json:"root_is_pure" yaml:"root_is_pure" toml:"root_is_pure"`
	// Python packages shipped, root first.
	// example: ["onnxruntime","onnxruntime.capi"]
	Packages []string `json:"packages" yaml:"packages" toml:"packages"`
	// Root package directory; package data paths are relative to it.
	// example: onnxruntime
	PackageDir string `json:"package_dir" yaml:"package_dir" toml:"package_dir"`
	// Native libraries that exist on disk, in platform table order.
	// example: ["capi/onnxruntime_pybind11_state.so"]
	BinaryArtifacts []string `json:"binary_artifacts" yaml:"binary_artifacts" toml:"binary_artifacts"`
	// Example models and legal notices, declared unconditionally.
	// example: ["datasets/sigmoid.onnx","ThirdPartyNotices.txt"]
	AuxiliaryFiles []string `json:"auxiliary_files" yaml:"auxiliary_files" toml:"auxiliary_files"`
	// Optional dependency groups: extra name to version constraints.
	// example: {"backend":["onnx>=1.2.3"]}
	ExtrasRequire map[string][]string `json:"extras_require" yaml:"extras_require" toml:"extras_require"`
	// Console commands: command name to "module:callable".
	// example: {"onnxruntime_test":"onnxruntime.tools.onnxruntime_test:main"}
	EntryPoints map[string]string `json:"entry_points" yaml:"entry_points" toml:"entry_points"`
	// Trove classifiers, order preserved.
	Classifiers []string `json:"classifiers" yaml:"classifiers" toml:"classifiers"`
}
