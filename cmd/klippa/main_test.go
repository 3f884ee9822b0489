package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestParseRect(t *testing.T) {
	win, err := parseRect("0, 0, 4, 4")
	if err != nil {
		t.Fatalf("parseRect() error: %v", err)
	}
	want := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 4}}
	if got := win.Bound(); got != want {
		t.Errorf("parseRect() bound = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,x"} {
		if _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q) expected an error", bad)
		}
	}
}

func TestClipLines(t *testing.T) {
	win, _ := parseRect("0,0,4,4")
	in := strings.NewReader(strings.Join([]string{
		"# comment",
		"",
		"LINESTRING(-1 2,5 2)",
		"POINT(9 9)",
		"POINT(1 1)",
	}, "\n"))

	var out strings.Builder
	subjects, clipped, err := clipLines(win, in, &out)
	if err != nil {
		t.Fatalf("clipLines() error: %v", err)
	}

	if len(subjects) != 3 {
		t.Fatalf("clipLines() parsed %d subjects, want 3", len(subjects))
	}
	if len(clipped) != 2 {
		t.Fatalf("clipLines() kept %d geometries, want 2", len(clipped))
	}
	want := "LINESTRING(0 2,4 2)\nPOINT(1 1)\n"
	if out.String() != want {
		t.Errorf("clipLines() output = %q, want %q", out.String(), want)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1F77B4", color.RGBA{0x1F, 0x77, 0xB4, 0xFF}},
		{"abc", color.RGBA{0xAA, 0xBB, 0xCC, 0xFF}},
		{"#fff", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"#11223344", color.RGBA{4, 9, 13, 0x44}},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if err != nil {
			t.Errorf("parseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#12345", "zzz"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) expected an error", bad)
		}
	}
}

func TestClipLinesBadWKT(t *testing.T) {
	win, _ := parseRect("0,0,4,4")
	in := strings.NewReader("POLYGON(not wkt)")

	var out strings.Builder
	if _, _, err := clipLines(win, in, &out); err == nil {
		t.Fatal("clipLines() expected an error for bad WKT")
	}
}

func TestWritePNG(t *testing.T) {
	fill = color.RGBA{0xAE, 0xC7, 0xE8, 0xFF}
	edge = color.RGBA{0x1F, 0x77, 0xB4, 0xFF}

	win, _ := parseRect("0,0,4,4")
	subjects := []orb.Geometry{
		orb.Polygon{{{-1, -1}, {-1, 5}, {5, 5}, {5, -1}, {-1, -1}}},
		orb.LineString{{-1, 2}, {5, 2}},
	}
	clipped := []orb.Geometry{
		orb.Polygon{{{0, 0}, {0, 4}, {4, 4}, {4, 0}, {0, 0}}},
		orb.LineString{{0, 2}, {4, 2}},
	}

	path := filepath.Join(t.TempDir(), "clip.png")
	if err := writePNG(path, 64, win, subjects, clipped); err != nil {
		t.Fatalf("writePNG() error: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("writePNG() wrote an empty file")
	}
}
