package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    []float64
		wantErr bool
	}{
		{"1,2,3", 3, []float64{1, 2, 3}, false},
		{" 0.5 , -1,2e1", 3, []float64{0.5, -1, 20}, false},
		{"1,2", 3, nil, true},
		{"1,x,3", 3, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFloats(tt.in, tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("parseFloats(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestPrintBackends(t *testing.T) {
	var buf bytes.Buffer
	if err := printBackends(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Active backend", "generic"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintEuler(t *testing.T) {
	var buf bytes.Buffer
	if err := printEuler(&buf, "0,90,0", true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "90.000000") {
		t.Fatalf("expected 90 degree angle:\n%s", out)
	}
	if !strings.Contains(out, "0.707107") {
		t.Fatalf("expected sin(45) component:\n%s", out)
	}
}

func TestPrintAxisAngle(t *testing.T) {
	var buf bytes.Buffer
	if err := printAxisAngle(&buf, "0,0,2", 0, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Near identity  true") {
		t.Fatalf("zero angle should be near identity:\n%s", buf.String())
	}

	if err := printAxisAngle(&buf, "0,0,0", 1, false); err == nil {
		t.Fatal("expected error for zero axis")
	}
}

func TestPrintQuatNormalizes(t *testing.T) {
	var buf bytes.Buffer
	if err := printQuat(&buf, "0,0,0,2", false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "normalizing") || !strings.Contains(out, "1.000000)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPrintGLTF(t *testing.T) {
	const doc = `{"asset":{"version":"2.0"},"nodes":[{"name":"root","rotation":[0,0,1,0],"children":[1]},{"name":"tip"}]}`
	path := filepath.Join(t.TempDir(), "scene.gltf")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printGLTF(&buf, path, true, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "180.0000") != 2 {
		t.Fatalf("expected both nodes rotated 180 degrees:\n%s", out)
	}

	if err := printGLTF(&buf, filepath.Join(t.TempDir(), "missing.gltf"), false, false); err == nil {
		t.Fatal("expected error for missing file")
	}
}
