package manifest

import (
	"github.com/rs/zerolog"

	"ortwheel/internal/artifacts"
	"ortwheel/pkg/types"
)

// Selector is the artifact selection the builder depends on.
type Selector interface {
	Run(ctx types.BuildContext, baseDir string) artifacts.Selection
}

// Builder assembles manifests.
type Builder struct {
	sel Selector
	md  Metadata
	log zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSelector replaces the artifact selector.
func WithSelector(s Selector) Option {
	return func(b *Builder) {
		if s != nil {
			b.sel = s
		}
	}
}

// WithMetadata replaces the static metadata.
func WithMetadata(md Metadata) Option { return func(b *Builder) { b.md = md } }

// WithLogger installs a structured logger.
func WithLogger(l zerolog.Logger) Option { return func(b *Builder) { b.log = l } }

// NewBuilder returns a Builder using DefaultMetadata and a disk-backed selector.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{md: DefaultMetadata(), log: zerolog.Nop()}
	for _, o := range opts {
		o(b)
	}
	if b.sel == nil {
		b.sel = artifacts.New(artifacts.WithLogger(b.log))
	}
	return b
}

// Assemble runs the selector once and merges its result with the static
// metadata. The selection is returned alongside for reporting.
func (b *Builder) Assemble(ctx types.BuildContext, baseDir, description string) (types.Manifest, artifacts.Selection) {
	sel := b.sel.Run(ctx, baseDir)
	m := types.Manifest{
		DistributionName: sel.DistributionName,
		Version:          b.md.Version,
		Description:      b.md.Description,
		LongDescription:  description,
		Author:           b.md.Author,
		AuthorEmail:      b.md.AuthorEmail,
		License:          b.md.License,
		RootIsPure:       false,
		Packages:         append([]string(nil), b.md.Packages...),
		PackageDir:       types.ProjectName,
		BinaryArtifacts:  dedupe(sel.Artifacts),
		AuxiliaryFiles:   b.md.AuxiliaryFiles(),
		ExtrasRequire:    copyExtras(b.md.ExtrasRequire),
		EntryPoints:      copyEntryPoints(b.md.EntryPoints),
		Classifiers:      append([]string(nil), b.md.Classifiers...),
	}
	b.log.Debug().
		Str("distribution", m.DistributionName).
		Str("os", ctx.OS.String()).
		Int("binary_artifacts", len(m.BinaryArtifacts)).
		Int("auxiliary_files", len(m.AuxiliaryFiles)).
		Msg("manifest assembled")
	return m, sel
}

// Build returns the manifest for ctx. It never fails; an empty description
// yields an empty long description.
func (b *Builder) Build(ctx types.BuildContext, baseDir, description string) types.Manifest {
	m, _ := b.Assemble(ctx, baseDir, description)
	return m
}

// Build uses a default Builder.
func Build(ctx types.BuildContext, baseDir, description string) types.Manifest {
	return NewBuilder().Build(ctx, baseDir, description)
}

// PackageData returns the package_data list of the root package: binary
// artifacts followed by auxiliary files.
func PackageData(m types.Manifest) []string {
	out := make([]string, 0, len(m.BinaryArtifacts)+len(m.AuxiliaryFiles))
	out = append(out, m.BinaryArtifacts...)
	out = append(out, m.AuxiliaryFiles...)
	return dedupe(out)
}

// ConsoleScripts returns "name = target" lines sorted by name.
func ConsoleScripts(m types.Manifest) []string {
	out := make([]string, 0, len(m.EntryPoints))
	for _, k := range sortedKeys(m.EntryPoints) {
		out = append(out, k+" = "+m.EntryPoints[k])
	}
	return out
}
