package artifacts

import (
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"ortwheel/internal/common/fsutil"
	"ortwheel/pkg/types"
)

// Selection is the full result of one selection run.
type Selection struct {
	DistributionName string
	// Supported is false when the fallback row was used.
	Supported bool
	// Candidates are the relative paths that were checked.
	Candidates []string
	// Artifacts are the candidates found on disk, in table order.
	Artifacts []string
	// Missing are the candidates that were dropped.
	Missing []string
}

// Selector checks platform candidates against a package tree.
type Selector struct {
	exists func(string) bool
	log    zerolog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithExists replaces the file existence check.
func WithExists(fn func(string) bool) Option {
	return func(s *Selector) {
		if fn != nil {
			s.exists = fn
		}
	}
}

// WithLogger installs a structured logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Selector) { s.log = l } }

// New returns a Selector that checks for regular files on the local disk.
func New(opts ...Option) *Selector {
	s := &Selector{exists: fsutil.IsFile, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// DistributionName returns the published name for ctx.
func DistributionName(ctx types.BuildContext) string {
	if ctx.GPUEnabled {
		return types.ProjectName + types.GPUSuffix
	}
	return types.ProjectName
}

// Run selects the artifacts for ctx under baseDir. Platforms without a table
// row use the fallback row and a warning is logged.
func (s *Selector) Run(ctx types.BuildContext, baseDir string) Selection {
	row, supported := rowFor(ctx.OS)
	if !supported {
		s.log.Warn().
			Str("os", ctx.OS.String()).
			Str("fallback", FallbackOS.String()).
			Msg("no artifact table for platform, using fallback naming")
	}
	pkgDir := filepath.Join(baseDir, types.ProjectName, BindingDir)
	sel := Selection{
		DistributionName: DistributionName(ctx),
		Supported:        supported,
		Candidates:       make([]string, 0, len(row)),
		Artifacts:        []string{},
	}
	for _, name := range row {
		rel := path.Join(BindingDir, name)
		sel.Candidates = append(sel.Candidates, rel)
		if s.exists(filepath.Join(pkgDir, name)) {
			sel.Artifacts = append(sel.Artifacts, rel)
			continue
		}
		sel.Missing = append(sel.Missing, rel)
		s.log.Debug().Str("artifact", rel).Msg("candidate not found, skipping")
	}
	s.log.Info().
		Str("distribution", sel.DistributionName).
		Int("selected", len(sel.Artifacts)).
		Int("missing", len(sel.Missing)).
		Msg("artifacts selected")
	return sel
}

// Select returns the distribution name and the binary artifacts present.
func (s *Selector) Select(ctx types.BuildContext, baseDir string) (string, []string) {
	sel := s.Run(ctx, baseDir)
	return sel.DistributionName, sel.Artifacts
}

// SelectStrict is Select but fails for platforms without a table row.
func (s *Selector) SelectStrict(ctx types.BuildContext, baseDir string) (string, []string, error) {
	if !Supported(ctx.OS) {
		return "", nil, ErrUnsupportedPlatform(ctx.OS)
	}
	name, arts := s.Select(ctx, baseDir)
	return name, arts, nil
}

// Select uses a default Selector.
func Select(ctx types.BuildContext, baseDir string) (string, []string) {
	return New().Select(ctx, baseDir)
}
