// Package artifacts decides which native libraries go into the package for a
// given BuildContext.
//
//   - table.go: per-platform candidate filenames and the fallback row.
//   - selector.go: Selector, existence filtering, distribution naming.
//   - errors.go: ErrUnsupportedPlatform and its predicate.
//
// Candidates are looked up under <baseDir>/onnxruntime/capi and reported
// relative to the root package directory (capi/<file>). Only presence is
// checked; file contents are never inspected.
package artifacts
