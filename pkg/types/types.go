// Package types holds the public domain types shared by the selector, the
// manifest builder and the CLI.
package types
