package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "project_dir: /src/ort\nos: windows\nversion: 0.2.0\nformat: toml\nstrict_platform: true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectDir != "/src/ort" || cfg.OS != "windows" || cfg.Version != "0.2.0" || cfg.Format != "toml" || !cfg.StrictPlatform {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"project_dir":"/p","description_file":"README.md","output":"dist/m.json","metrics_file":"m.prom","log_level":"debug"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectDir != "/p" || cfg.DescriptionFile != "README.md" || cfg.Output != "dist/m.json" || cfg.MetricsFile != "m.prom" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "project_dir=\"/x\"\nos=\"linux\"\nversion=\"0.1.3\"\nstrict_platform=false\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectDir != "/x" || cfg.OS != "linux" || cfg.Version != "0.1.3" || cfg.StrictPlatform {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestMerge(t *testing.T) {
	base := Config{ProjectDir: "/a", Version: "0.1.3", Format: "json"}
	out := Merge(base, Config{ProjectDir: "/b", StrictPlatform: true})
	if out.ProjectDir != "/b" || out.Version != "0.1.3" || out.Format != "json" || !out.StrictPlatform {
		t.Fatalf("unexpected merge: %+v", out)
	}
	if Merge(out, Config{}).ProjectDir != "/b" {
		t.Fatalf("empty override must not clear fields")
	}
}
