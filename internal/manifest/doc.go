// Package manifest assembles the package manifest: the artifact selection for
// a BuildContext merged with the fixed auxiliary files and static metadata.
//
//   - metadata.go: Metadata and DefaultMetadata (identity, extras, entry points).
//   - builder.go: Builder and Build.
//   - validate.go: semantic checks run before the manifest is emitted.
//   - encode.go: JSON/YAML/TOML encoders and Digest.
//
// Output is deterministic: every list keeps declaration order and maps are
// written with sorted keys by all encoders.
package manifest
