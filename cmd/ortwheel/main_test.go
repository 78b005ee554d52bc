package main

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/cmd/ortwheel/main_test.go
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in -short mode")
	}
	outDir := t.TempDir()
	binPath := filepath.Join(outDir, "ortwheel")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/ortwheel")
	cmd.Dir = projectRootFromThisFile(t)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}

func TestBlackbox_ManifestAndMissingReadme(t *testing.T) {
	bin := buildBinary(t)
	project := t.TempDir()
	capi := filepath.Join(project, "onnxruntime", "capi")
	if err := os.MkdirAll(capi, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"onnxruntime_pybind11_state.so", "libiomp5.so"} {
		if err := os.WriteFile(filepath.Join(capi, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// no README.rst anywhere: exit code 1 with a file-not-found message
	cmd := exec.Command(bin, "manifest", "--project-dir", project, "--os", "linux")
	cmd.Dir = t.TempDir()
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit 1, got %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "unable to find 'README.rst'") {
		t.Fatalf("unexpected output: %s", out)
	}

	// README.rst in the working directory is picked up first
	wd := t.TempDir()
	if err := os.WriteFile(filepath.Join(wd, "README.rst"), []byte("from cwd"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd = exec.Command(bin, "--use_cuda", "manifest", "--project-dir", project, "--os", "linux", "--log-level", "off")
	cmd.Dir = wd
	stdout, err := cmd.Output()
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	var m struct {
		DistributionName string   `json:"distribution_name"`
		LongDescription  string   `json:"long_description"`
		BinaryArtifacts  []string `json:"binary_artifacts"`
	}
	if err := json.Unmarshal(stdout, &m); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if m.DistributionName != "onnxruntime-gpu" || m.LongDescription != "from cwd" || len(m.BinaryArtifacts) != 2 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}
