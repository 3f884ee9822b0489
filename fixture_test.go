package klippa

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
)

// loadFixture looks up a row in testdata/wkt.csv by id and returns the
// clip window derived from the bbox column plus the subject geometry.
func loadFixture(tb testing.TB, id string) (Rect, orb.Geometry) {
	tb.Helper()

	f, err := os.Open(filepath.Join("testdata", "wkt.csv"))
	if err != nil {
		tb.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		tb.Fatal(err)
	}
	for _, row := range rows[1:] {
		if row[0] != id {
			continue
		}
		bbox := parseWKT(tb, row[1])
		return NewRectFromBound(bbox.Bound()), parseWKT(tb, row[2])
	}
	tb.Fatalf("no fixture row %q", id)
	return Rect{}, nil
}

func TestFixtureCourtyard(t *testing.T) {
	r, g := loadFixture(t, "courtyard")

	wantBound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	if r.Bound() != wantBound {
		t.Fatalf("window = %v, want %v", r.Bound(), wantBound)
	}

	got := r.Clip(g)
	poly, ok := got.(orb.Polygon)
	if !ok {
		t.Fatalf("Clip() = %T, want orb.Polygon", got)
	}
	if len(poly) != 2 {
		t.Fatalf("clipped polygon has %d rings, want exterior + 1 hole", len(poly))
	}
	if !reflect.DeepEqual(got, g) {
		t.Errorf("Clip() = %v, want the untouched subject", poly)
	}
}

func TestFixtureArcade(t *testing.T) {
	r, g := loadFixture(t, "arcade")

	got := r.Clip(g)
	want := orb.MultiPolygon{
		{{{1.5, 4}, {1.5, 0}, {1, 0}, {1, 4}, {1.5, 4}}},
		{{{3, 4}, {3, 0}, {2.5, 0}, {2.5, 4}, {3, 4}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clip() = %v, want %v", got, want)
	}
}

func TestFixtureTowpath(t *testing.T) {
	r, g := loadFixture(t, "towpath")

	got := r.Clip(g)
	want := orb.LineString{{0, 2}, {1, 2}, {4, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clip() = %v, want %v", got, want)
	}
}

func TestFixtureOffshore(t *testing.T) {
	r, g := loadFixture(t, "offshore")

	if got := r.Clip(g); got != nil {
		t.Errorf("Clip() = %v, want nil for a subject outside the window", got)
	}
}

func TestFixtureCover(t *testing.T) {
	r, g := loadFixture(t, "cover")

	got := r.Clip(g)
	poly, ok := got.(orb.Polygon)
	if !ok {
		t.Fatalf("Clip() = %T, want orb.Polygon", got)
	}
	if !reflect.DeepEqual(poly[0], r.boundaryRing()) {
		t.Errorf("Clip() = %v, want the window boundary", poly)
	}
}
