package artifacts

import "ortwheel/pkg/types"

// unsupportedPlatformError is returned by strict selection for platforms that
// have no artifact table.
type unsupportedPlatformError struct{ os types.OS }

func (e unsupportedPlatformError) Error() string {
	return "unsupported platform: no native artifact table for " + e.os.String()
}

// ErrUnsupportedPlatform constructs the strict-mode platform error.
func ErrUnsupportedPlatform(os types.OS) error { return unsupportedPlatformError{os: os} }

// IsUnsupportedPlatform reports whether err came from strict selection on an
// unsupported platform.
func IsUnsupportedPlatform(err error) bool {
	_, ok := err.(unsupportedPlatformError)
	return ok
}
