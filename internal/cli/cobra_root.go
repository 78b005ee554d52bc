package cli

import (
	"github.com/spf13/cobra"
)

// buildRootCmdWith constructs the command tree bound to st.
func buildRootCmdWith(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:           "ortwheel",
		Short:         "Assemble the onnxruntime Python package manifest",
		Long:          "Assemble the onnxruntime Python package manifest.\n\nPass --use_cuda anywhere on the command line to build the onnxruntime-gpu variant.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.ConfigPath, "config", "", "Build config file (.yaml, .yml, .json, .toml)")
	pf.StringVar(&st.Flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error|off (defaults ORTWHEEL_LOG_LEVEL or info)")
	pf.StringVar(&st.Flags.ProjectDir, "project-dir", "", "Directory containing the onnxruntime package tree (default .)")
	pf.StringVar(&st.Flags.OS, "os", "", "Target OS family: linux|windows|<other> (default host)")
	pf.BoolVar(&st.Flags.StrictPlatform, "strict-platform", false, "Fail instead of falling back on platforms without an artifact table")

	manifestCmd := &cobra.Command{
		Use:   "manifest",
		Short: "Assemble and print the package manifest",
		Example: "  ortwheel manifest --project-dir build/Release\n" +
			"  ortwheel --use_cuda manifest --output dist/manifest.toml\n" +
			"  ortwheel manifest --config ortwheel.yaml --format yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error { return runManifest(st) },
	}
	mf := manifestCmd.Flags()
	mf.StringVarP(&st.Flags.Output, "output", "o", "", "Write the manifest to this file (- for stdout)")
	mf.StringVar(&st.Flags.Format, "format", "", "Output format: json|yaml|toml (default from --output extension, else json)")
	mf.StringVar(&st.Flags.DescriptionFile, "description-file", "", "Long description file name (default README.rst)")
	mf.StringVar(&st.Flags.Version, "version", "", "Override the package version")
	mf.StringVar(&st.Flags.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")

	selectCmd := &cobra.Command{
		Use:     "select",
		Short:   "Print the distribution name and the native artifacts found",
		Example: "  ortwheel select --project-dir build/Release\n  ortwheel --use_cuda select --os windows",
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, args []string) error { return runSelect(st) },
	}

	root.AddCommand(manifestCmd, selectCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(st.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(st.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(st.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(st.Stdout) }})
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(completionCmd)

	return root
}
