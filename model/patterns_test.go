package model

import (
	"reflect"
	"sort"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("PatternNames() not sorted: %v", names)
	}
	for _, name := range names {
		cells, err := Pattern(name)
		if err != nil || len(cells) == 0 {
			t.Fatalf("Pattern(%q) = %v, %v", name, cells, err)
		}
	}
}

func TestPatternUnknown(t *testing.T) {
	if _, err := Pattern("spaceship-9000"); errors.Cause(err) != ErrUnknownPattern {
		t.Fatalf("Pattern() error = %v, want ErrUnknownPattern", err)
	}
}

func TestPatternReturnsCopy(t *testing.T) {
	cells, _ := Pattern("block")
	cells[0] = Coordinate{99, 99}
	again, _ := Pattern("block")
	if again[0] == (Coordinate{99, 99}) {
		t.Fatal("Pattern() exposed the catalogue slice")
	}
}

func TestCenteredGliderMatchesFixture(t *testing.T) {
	cells, err := Pattern("glider")
	if err != nil {
		t.Fatal(err)
	}
	got := coordSet(Centered(cells, 5, 5))
	if !reflect.DeepEqual(got, coordSet(glider5x5)) {
		t.Fatalf("Centered(glider) = %v, want %v", got, glider5x5)
	}
	if Centered(nil, 5, 5) != nil {
		t.Fatal("Centered(nil) should be nil")
	}
}

func TestTranslate(t *testing.T) {
	got := Translate([]Coordinate{{0, 0}, {1, 2}}, Coordinate{3, -1})
	want := []Coordinate{{3, -1}, {4, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Translate() = %v, want %v", got, want)
	}
}

func TestStillLifesAndOscillators(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"beehive", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells, err := Pattern(tc.name)
			if err != nil {
				t.Fatal(err)
			}
			start := mustGrid(t, 10, 10, Centered(cells, 10, 10))

			g := start
			for range tc.period {
				g = mustGrid(t, 10, 10, g.Evolve())
			}
			if !g.Equal(start) {
				t.Fatalf("%s did not return after %d generations: %v", tc.name, tc.period, g.Populated())
			}
		})
	}
}
