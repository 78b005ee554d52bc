package manifest

import (
	"path"
	"sort"

	"ortwheel/pkg/types"
)

// DatasetsDir holds the example models inside the root package.
const DatasetsDir = "datasets"

// Metadata is the static part of the manifest.
type Metadata struct {
	Version     string
	Description string
	Author      string
	AuthorEmail string
	License     string
	// Packages lists the root package followed by its sub-packages.
	Packages []string
	// Examples are filenames under DatasetsDir.
	Examples []string
	// Notices are legal files at the package root.
	Notices       []string
	ExtrasRequire map[string][]string
	EntryPoints   map[string]string
	Classifiers   []string
}

// DefaultMetadata returns a fresh copy of the onnxruntime package metadata.
func DefaultMetadata() Metadata {
	return Metadata{
		Version:     "0.1.3",
		Description: "ONNX Runtime Runtime Python bindings",
		Author:      "Microsoft Corporation",
		AuthorEmail: "onnx@microsoft.com",
		License:     "Microsoft Software License Terms",
		Packages: []string{
			types.ProjectName,
			types.ProjectName + ".backend",
			types.ProjectName + ".capi",
			types.ProjectName + ".datasets",
			types.ProjectName + ".tools",
		},
		Examples: []string{"mul_1.pb", "logreg_iris.onnx", "sigmoid.onnx"},
		Notices:  []string{"ONNXRuntime_EndUserLicenseAgreement.docx", "ThirdPartyNotices.txt"},
		ExtrasRequire: map[string][]string{
			"backend": {"onnx>=1.2.3"},
		},
		EntryPoints: map[string]string{
			"onnxruntime_test": "onnxruntime.tools.onnxruntime_test:main",
		},
		Classifiers: []string{
			"Development Status :: 4 - Beta",
			"Environment :: Console",
			"Intended Audience :: Developers",
			"Operating System :: POSIX :: Linux",
			"Programming Language :: Python",
			"Programming Language :: Python :: 3 :: Only",
			"Programming Language :: Python :: 3.5",
			"Programming Language :: Python :: 3.6",
			"Programming Language :: Python :: 3.7",
		},
	}
}

// AuxiliaryFiles returns the example files (prefixed with DatasetsDir)
// followed by the notices. Duplicates keep their first position.
func (md Metadata) AuxiliaryFiles() []string {
	out := make([]string, 0, len(md.Examples)+len(md.Notices))
	for _, e := range md.Examples {
		out = append(out, path.Join(DatasetsDir, e))
	}
	out = append(out, md.Notices...)
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func copyExtras(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func copyEntryPoints(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
