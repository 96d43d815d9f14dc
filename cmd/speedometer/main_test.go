package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roffe/speedometer/pkg/speedometer"
)

func TestPrintGeometry(t *testing.T) {
	var buf bytes.Buffer
	if err := printGeometry(&buf, speedometer.DefaultConfig(), 90, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"135.00°", "225.00°", "315.00°", "90.00°",
		"270.00°",
		`"90/180"`,
		"translate", "dx=64.00 dy=64.00",
		"(350.00, 350.00) -> (350.00, 0.00)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTo(t *testing.T) {
	tests := []struct {
		name    string
		opts    renderOptions
		wantErr bool
	}{
		{"default", renderOptions{speed: 42, size: 128, background: "white"}, false},
		{"transparent", renderOptions{speed: 42, size: 64, background: "transparent"}, false},
		{"bad background", renderOptions{size: 64, background: "plaid"}, true},
		{"bad size", renderOptions{size: 0, background: "white"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.out = filepath.Join(t.TempDir(), "out.png")
			err := renderTo(nil, speedometer.DefaultConfig(), tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("renderTo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			f, err := os.Open(tt.opts.out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != tt.opts.size || b.Dy() != tt.opts.size {
				t.Errorf("image size = %v, want %d", b, tt.opts.size)
			}
		})
	}
}

func TestRenderStdout(t *testing.T) {
	var buf bytes.Buffer
	opts := renderOptions{speed: 10, size: 32, background: "black", out: "-"}
	if err := renderTo(&buf, speedometer.DefaultConfig(), opts); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("stdout does not carry a PNG")
	}
}

func TestExecuteWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("max_speed: 240\nlow_speed_color: blue\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("max_speed: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"geometry", "--config", good, "--speed", "120"})
	if err := Execute(); err != nil {
		t.Fatalf("geometry: %v", err)
	}
	if !strings.Contains(out.String(), `"120/240"`) {
		t.Errorf("geometry output does not use the config file:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "#0000ff") {
		t.Errorf("geometry output misses the low band color:\n%s", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"geometry", "--config", bad})
	err := Execute()
	if err == nil || !strings.Contains(err.Error(), "max speed") {
		t.Errorf("expected invalid max speed error, got %v", err)
	}
}
