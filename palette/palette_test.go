package palette

import (
	"image/color"
	"math"
	"testing"
)

func blackToWhite() *ColorScheme {
	cs := NewColorScheme()
	cs.AddHex(0xffffff, 1.0)
	cs.AddHex(0x000000, 0.0)
	return cs
}

func TestAddKeepsStopsSorted(t *testing.T) {
	cs := NewColorScheme()
	cs.AddHex(0x030303, 0.9)
	cs.AddHex(0x010101, 0.1)
	cs.AddHex(0x020202, 0.5)
	cs.AddHex(0x040404, 0.5)

	stops := cs.Stops()
	want := []uint8{1, 2, 4, 3}
	if len(stops) != len(want) {
		t.Fatalf("got %d stops, want %d", len(stops), len(want))
	}
	for i, s := range stops {
		if s.Color.R != want[i] {
			t.Errorf("stop %d has color %v, want red %d", i, s.Color, want[i])
		}
		if i > 0 && s.Position < stops[i-1].Position {
			t.Errorf("stop %d at %g comes after %g", i, s.Position, stops[i-1].Position)
		}
	}
}

func TestLookupAtStopsIsExact(t *testing.T) {
	for _, name := range Presets() {
		cs, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range cs.Stops() {
			if got := cs.Lookup(s.Position); got != s.Color {
				t.Errorf("%s: Lookup(%g) = %v, want %v", name, s.Position, got, s.Color)
			}
		}
	}
}

func TestLookupTruncatesBlend(t *testing.T) {
	cs := blackToWhite()
	want := color.RGBA{R: 127, G: 127, B: 127, A: 255}
	if got := cs.Lookup(0.5); got != want {
		t.Errorf("Lookup(0.5) = %v, want %v", got, want)
	}
}

func TestLookupIsMonotonicBetweenStops(t *testing.T) {
	cs := NewColorScheme()
	cs.AddHex(0x102030, 0.2)
	cs.AddHex(0xf0a050, 0.7)
	cs.AddHex(0x000000, 0.0)
	cs.AddHex(0xffffff, 1.0)

	previous := cs.Lookup(0.2)
	for p := 0.2; p <= 0.7; p += 0.01 {
		c := cs.Lookup(p)
		if c.R < previous.R || c.G < previous.G || c.B < previous.B {
			t.Fatalf("Lookup(%g) = %v went backwards from %v", p, c, previous)
		}
		previous = c
	}
}

func TestLookupSaturates(t *testing.T) {
	cs := NewColorScheme()
	cs.AddHex(0x112233, 0.25)
	cs.AddHex(0x445566, 0.75)

	tests := []struct {
		name     string
		position float64
		want     color.RGBA
	}{
		{"above last stop", 1.0000001, FromHex(0x445566)},
		{"far above", 42, FromHex(0x445566)},
		{"below first stop", 0, FromHex(0x112233)},
		{"nan", math.NaN(), FromHex(0x112233)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cs.Lookup(tc.position); got != tc.want {
				t.Errorf("Lookup(%g) = %v, want %v", tc.position, got, tc.want)
			}
		})
	}

	if got := NewColorScheme().Lookup(0.5); got != Background {
		t.Errorf("empty scheme gave %v, want background", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ff7700", 0xff7700, false},
		{"0x000764", 0x000764, false},
		{"EDFFFF", 0xedffff, false},
		{"#fff", 0, true},
		{"zzzzzz", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %t", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

func TestSettings(t *testing.T) {
	s := Settings{}
	if err := s.Verify(); err != nil {
		t.Fatal(err)
	}
	if s.Preset != "ultra" {
		t.Errorf("default preset %q", s.Preset)
	}

	s = Settings{Stops: []StopSettings{{"#000000", 0}, {"#ffffff", 1}}}
	if err := s.Verify(); err != nil {
		t.Fatal(err)
	}
	cs, err := s.ColorScheme()
	if err != nil {
		t.Fatal(err)
	}
	if got := cs.Lookup(1); got != FromHex(0xffffff) {
		t.Errorf("Lookup(1) = %v", got)
	}

	bad := Settings{Stops: []StopSettings{{"#000000", -1}, {"#ffffff", 1}}}
	if err := bad.Verify(); err == nil {
		t.Error("stop below 0 accepted")
	}
	if _, err := Preset("nope"); err == nil {
		t.Error("unknown preset accepted")
	}
}
