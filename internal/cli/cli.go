// Package cli wires the ortwheel command line: GPU flag pre-parsing, the cobra
// command tree, configuration resolution and logging.
package cli

import (
	"fmt"
	"io"
	"os"

	"ortwheel/internal/buildctx"
	"ortwheel/internal/config"
)

const (
	envLogLevel       = "ORTWHEEL_LOG_LEVEL"
	envStrictPlatform = "ORTWHEEL_STRICT_PLATFORM"
)

// state is shared by the command tree for one invocation.
type state struct {
	// GPU is the pre-parsed --use_cuda value.
	GPU bool
	// ConfigPath is the optional --config file.
	ConfigPath string
	// Flags holds values given on the command line; empty means unset.
	Flags  config.Config
	Stdout io.Writer
	Stderr io.Writer
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ortwheel [--use_cuda] [--log-level info] <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  manifest   assemble the package manifest")
	fmt.Fprintln(w, "  select     list the native artifacts found for the platform")
	fmt.Fprintln(w, "  completion bash|zsh|fish|powershell")
}

// defaults returns the lowest-precedence configuration.
func defaults() config.Config {
	return config.Config{
		ProjectDir:     ".",
		OS:             fnHostOS(),
		Output:         "-",
		LogLevel:       envStr(envLogLevel, "info"),
		StrictPlatform: envBool(envStrictPlatform, false),
	}
}

// resolve merges defaults, the config file and flags, in that order.
func (s *state) resolve() (config.Config, error) {
	cfg := defaults()
	if s.ConfigPath != "" {
		fileCfg, err := config.Load(s.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	return config.Merge(cfg, s.Flags), nil
}

// MainWithArgs runs the CLI with explicit args and output streams and returns
// an exit code: 0 on success, 1 on error, 2 when no command is given.
func MainWithArgs(args []string, stdout, stderr io.Writer) int {
	// --use_cuda never reaches the flag parser
	gpu, rest := buildctx.ExtractGPUFlag(args)
	if len(rest) == 0 {
		usage(stdout)
		return 2
	}
	st := &state{GPU: gpu, Stdout: stdout, Stderr: stderr}
	root := buildRootCmdWith(st)
	root.SetArgs(rest)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/ortwheel.
func Main() int { return MainWithArgs(os.Args[1:], os.Stdout, os.Stderr) }
