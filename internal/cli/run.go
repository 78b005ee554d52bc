package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"ortwheel/internal/artifacts"
	"ortwheel/internal/buildctx"
	"ortwheel/internal/common/fsutil"
	"ortwheel/internal/config"
	"ortwheel/internal/manifest"
	"ortwheel/internal/metrics"
	"ortwheel/internal/readme"
	"ortwheel/pkg/types"
)

// prepared is the resolved input shared by all commands.
type prepared struct {
	cfg     config.Config
	ctx     types.BuildContext
	baseDir string
	log     zerolog.Logger
}

func (s *state) prepare() (prepared, error) {
	cfg, err := s.resolve()
	if err != nil {
		return prepared{}, err
	}
	log := newLogger(s.Stderr, cfg.LogLevel)
	dir, err := fsutil.ExpandHome(cfg.ProjectDir)
	if err != nil {
		return prepared{}, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return prepared{}, fmt.Errorf("abs path: %w", err)
	}
	if !fsutil.PathExists(abs) {
		log.Warn().Str("project_dir", abs).Msg("project directory does not exist, no native artifacts will be found")
	}
	ctx := buildctx.Detect(cfg.OS, s.GPU)
	log.Debug().
		Str("os", ctx.OS.String()).
		Bool("gpu", ctx.GPUEnabled).
		Str("project_dir", abs).
		Msg("build context")
	if cfg.StrictPlatform && !artifacts.Supported(ctx.OS) {
		return prepared{}, artifacts.ErrUnsupportedPlatform(ctx.OS)
	}
	return prepared{cfg: cfg, ctx: ctx, baseDir: abs, log: log}, nil
}

func runSelect(s *state) error {
	p, err := s.prepare()
	if err != nil {
		return err
	}
	name, arts := artifacts.New(artifacts.WithLogger(p.log)).Select(p.ctx, p.baseDir)
	fmt.Fprintln(s.Stdout, name)
	for _, a := range arts {
		fmt.Fprintln(s.Stdout, a)
	}
	return nil
}

func runManifest(s *state) error {
	p, err := s.prepare()
	if err != nil {
		return err
	}
	// Missing description aborts before anything is assembled.
	desc, err := fnReadDescription(p.cfg.DescriptionFile, readme.SearchDirs(p.baseDir)...)
	if err != nil {
		return err
	}
	format, err := outputFormat(p.cfg)
	if err != nil {
		return err
	}

	md := manifest.DefaultMetadata()
	if p.cfg.Version != "" {
		md.Version = p.cfg.Version
	}
	b := manifest.NewBuilder(manifest.WithMetadata(md), manifest.WithLogger(p.log))
	m, sel := b.Assemble(p.ctx, p.baseDir, desc)
	if err := manifest.Validate(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	out, err := manifest.Marshal(m, format)
	if err != nil {
		return err
	}
	// A metrics failure leaves no manifest behind.
	if p.cfg.MetricsFile != "" {
		rec := metrics.New()
		rec.Observe(p.ctx, sel)
		if err := rec.WriteTextfile(p.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if err := writeOutput(s.Stdout, p.cfg.Output, out); err != nil {
		return err
	}
	digest, err := fnDigest(m)
	if err != nil {
		p.log.Warn().Err(err).Msg("manifest digest failed")
	}
	p.log.Info().
		Str("distribution", m.DistributionName).
		Str("format", string(format)).
		Str("digest", digest).
		Msg("manifest written")
	return nil
}

// outputFormat prefers an explicit format, then the output file extension.
func outputFormat(cfg config.Config) (manifest.Format, error) {
	if cfg.Format != "" {
		return manifest.ParseFormat(cfg.Format)
	}
	if cfg.Output != "" && cfg.Output != "-" {
		return manifest.FormatFromPath(cfg.Output)
	}
	return manifest.FormatJSON, nil
}

func writeOutput(stdout io.Writer, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(b)
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
