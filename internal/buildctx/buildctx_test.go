package buildctx

import (
	"runtime"
	"testing"

	"ortwheel/pkg/types"
)

func TestExtractGPUFlag(t *testing.T) {
	cases := []struct {
		in   []string
		gpu  bool
		rest []string
	}{
		{nil, false, []string{}},
		{[]string{"manifest"}, false, []string{"manifest"}},
		{[]string{"--use_cuda", "manifest"}, true, []string{"manifest"}},
		{[]string{"manifest", "--project-dir", "x", "--use_cuda"}, true, []string{"manifest", "--project-dir", "x"}},
		{[]string{"--use_cuda", "select", "--use_cuda"}, true, []string{"select"}},
		{[]string{"--use_cuda=true", "select"}, false, []string{"--use_cuda=true", "select"}},
		{[]string{"select", "--", "--use_cuda"}, false, []string{"select", "--", "--use_cuda"}},
		{[]string{"--use_cuda", "manifest", "--", "--use_cuda"}, true, []string{"manifest", "--", "--use_cuda"}},
	}
	for _, c := range cases {
		gpu, rest := ExtractGPUFlag(c.in)
		if gpu != c.gpu {
			t.Fatalf("%v: gpu=%v want %v", c.in, gpu, c.gpu)
		}
		if len(rest) != len(c.rest) {
			t.Fatalf("%v: rest=%#v want %#v", c.in, rest, c.rest)
		}
		for i := range rest {
			if rest[i] != c.rest[i] {
				t.Fatalf("%v: rest=%#v want %#v", c.in, rest, c.rest)
			}
		}
	}
}

func TestExtractGPUFlag_DoesNotMutateInput(t *testing.T) {
	in := []string{"--use_cuda", "manifest", "--use_cuda"}
	_, _ = ExtractGPUFlag(in)
	if in[0] != "--use_cuda" || in[1] != "manifest" || in[2] != "--use_cuda" || len(in) != 3 {
		t.Fatalf("input mutated: %#v", in)
	}
}

func TestDetect(t *testing.T) {
	if c := Detect("linux", false); c.OS != types.Linux || c.GPUEnabled {
		t.Fatalf("unexpected: %+v", c)
	}
	if c := Detect("windows", true); c.OS != types.Windows || !c.GPUEnabled {
		t.Fatalf("unexpected: %+v", c)
	}
	if c := Detect("darwin", false); c.OS != types.Other {
		t.Fatalf("darwin should map to Other, got %v", c.OS)
	}
	if c := Host(true); c.OS != types.ParseOS(runtime.GOOS) || !c.GPUEnabled {
		t.Fatalf("host context mismatch: %+v", c)
	}
}
