package cli

import (
	"runtime"

	"ortwheel/internal/manifest"
	"ortwheel/internal/readme"
)

// Indirection layer to allow stubbing in tests

var (
	fnHostOS          = func() string { return runtime.GOOS }
	fnReadDescription = readme.Read
	fnDigest          = manifest.Digest
)
