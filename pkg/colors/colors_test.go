package colors_test

import (
	"image/color"
	"testing"

	"github.com/roffe/speedometer/pkg/colors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "name", in: "green", want: colors.Green},
		{name: "name mixed case", in: " Yellow ", want: colors.Yellow},
		{name: "hex", in: "#ff8000", want: color.RGBA{0xFF, 0x80, 0x00, 0xFF}},
		{name: "hex alpha", in: "#ff800080", want: color.RGBA{0xFF, 0x80, 0x00, 0x80}},
		{name: "unknown", in: "purpleish", wantErr: true},
		{name: "short hex", in: "#fff", wantErr: true},
		{name: "bad alpha", in: "#ff8000zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colors.Parse(tt.in)
			if err != nil {
				if !tt.wantErr {
					t.Errorf("Parse(%q) failed: %v", tt.in, err)
				}
				return
			}
			if tt.wantErr {
				t.Fatalf("Parse(%q) succeeded unexpectedly", tt.in)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := colors.Hex(colors.Red); got != "#ff0000" {
		t.Errorf("Hex(red) = %q", got)
	}
	if got := colors.Hex(color.RGBA{0x10, 0x20, 0x30, 0x40}); got != "#10203040" {
		t.Errorf("Hex() = %q, want #10203040", got)
	}
}

func TestBandColors(t *testing.T) {
	low, mid, high := colors.BandColors(colors.ModeNormal)
	if low != colors.Green || mid != colors.Yellow || high != colors.Red {
		t.Errorf("normal palette = %v %v %v", low, mid, high)
	}
	for _, name := range colors.SupportedColorBlindModes {
		mode := colors.StringToColorBlindMode(name)
		if mode.String() != name {
			t.Errorf("mode %q round trips to %q", name, mode.String())
		}
	}
	if colors.StringToColorBlindMode("nope") != colors.ModeNormal {
		t.Error("unknown mode should map to Normal")
	}
}
