package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	version "github.com/aquasecurity/go-pep440-version"

	"ortwheel/pkg/types"
)

var (
	// project name, optional [extras], specifier set: onnx[ml]>=1.2,<2
	requirementRe = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*(.*)$`)
	clauseRe      = regexp.MustCompile(`^\s*(~=|===|==|!=|<=|>=|<|>)\s*(\S+)\s*$`)
	// dotted.module:callable
	entryPointRe = regexp.MustCompile(`^[A-Za-z_]\w*(\.[A-Za-z_]\w*)*:[A-Za-z_]\w*(\.[A-Za-z_]\w*)*$`)
	commandRe    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// validationError describes one invalid manifest field.
type validationError struct {
	field string
	msg   string
}

func (e validationError) Error() string { return e.field + ": " + e.msg }

// IsValidationError reports whether err, or any error joined into it, is a
// manifest validation failure.
func IsValidationError(err error) bool {
	var ve validationError
	return errors.As(err, &ve)
}

// validVersion accepts any PEP 440 version: 0.1.3, 1.0.0rc1, 0.1.3.post1,
// 1.2.3.4, 2.0.dev0.
func validVersion(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	_, err := version.Parse(v)
	return err == nil
}

// Requirement is one dependency line such as "onnx>=1.2.3". Environment
// markers after ';' are accepted but not evaluated.
type Requirement struct {
	Name   string
	Extras []string
	// Comma-separated specifier set; empty means any version.
	Specifier string
}

// ParseRequirement parses a requirement string. Every clause of the
// specifier set must use a PEP 440 operator and version.
func ParseRequirement(s string) (Requirement, error) {
	body, _, _ := strings.Cut(s, ";")
	mm := requirementRe.FindStringSubmatch(strings.TrimSpace(body))
	if mm == nil {
		return Requirement{}, fmt.Errorf("malformed requirement %q", s)
	}
	r := Requirement{Name: mm[1]}
	for _, e := range strings.Split(mm[2], ",") {
		if e = strings.TrimSpace(e); e != "" {
			r.Extras = append(r.Extras, e)
		}
	}
	spec := strings.TrimSpace(mm[3])
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		spec = strings.TrimSpace(spec[1 : len(spec)-1])
	}
	if spec == "" {
		return r, nil
	}
	for _, clause := range strings.Split(spec, ",") {
		cm := clauseRe.FindStringSubmatch(clause)
		if cm == nil {
			return Requirement{}, fmt.Errorf("requirement %q: malformed specifier %q", s, strings.TrimSpace(clause))
		}
		op, v := cm[1], cm[2]
		if op == "===" {
			continue
		}
		if op == "==" || op == "!=" {
			v = strings.TrimSuffix(v, ".*")
		}
		if _, err := version.Parse(v); err != nil {
			return Requirement{}, fmt.Errorf("requirement %q: invalid version %q", s, cm[2])
		}
	}
	r.Specifier = spec
	return r, nil
}

// Allows reports whether v satisfies the requirement's specifier set.
func (r Requirement) Allows(v string) (bool, error) {
	pv, err := version.Parse(v)
	if err != nil {
		return false, err
	}
	if r.Specifier == "" {
		return true, nil
	}
	ss, err := version.NewSpecifiers(r.Specifier)
	if err != nil {
		return false, fmt.Errorf("specifier %q: %w", r.Specifier, err)
	}
	return ss.Check(pv), nil
}

// Validate checks the manifest before it is handed to the toolchain. All
// problems are reported together.
func Validate(m types.Manifest) error {
	var errs []error
	add := func(field, format string, a ...any) {
		errs = append(errs, validationError{field: field, msg: fmt.Sprintf(format, a...)})
	}
	if m.DistributionName == "" {
		add("distribution_name", "must not be empty")
	}
	if !validVersion(m.Version) {
		add("version", "invalid version %q", m.Version)
	}
	if len(m.Packages) == 0 {
		add("packages", "at least one package is required")
	}
	for _, extra := range sortedKeys(m.ExtrasRequire) {
		for _, c := range m.ExtrasRequire[extra] {
			if _, err := ParseRequirement(c); err != nil {
				add("extras_require."+extra, "%v", err)
			}
		}
	}
	for _, name := range sortedKeys(m.EntryPoints) {
		if !commandRe.MatchString(name) {
			add("entry_points", "invalid command name %q", name)
		}
		if !entryPointRe.MatchString(m.EntryPoints[name]) {
			add("entry_points."+name, "invalid target %q, want module:callable", m.EntryPoints[name])
		}
	}
	for i, p := range PackageData(m) {
		if p == "" || strings.HasPrefix(p, "/") || slices.Contains(strings.Split(p, "/"), "..") {
			add("package_data", "entry %d: path %q must be relative to the package", i, p)
		}
	}
	return errors.Join(errs...)
}
