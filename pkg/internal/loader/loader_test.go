package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTabSeparated(t *testing.T) {
	input := "400.0\t0.91\n401.0\t0.88\n402.0\t0.85\n"

	s, err := Load(strings.NewReader(input), Config{SpecCol: 1, Name: "sample", FreqUnit: "nm", SpecUnit: "%T"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 samples, got %d", s.Len())
	}
	if s.XData()[0] != 400 || s.YData()[2] != 0.85 {
		t.Errorf("Unexpected data: x=%v y=%v", s.XData(), s.YData())
	}
	if s.Label() != "sample" || s.XUnit() != "nm" || s.YUnit() != "%T" {
		t.Errorf("Metadata not carried: %q %q %q", s.Label(), s.XUnit(), s.YUnit())
	}
}

func TestLoadCommaWithHeaderAndComments(t *testing.T) {
	input := "wavelength,signal\n# instrument export\n1.0,10.0\n2.0,20.0\n"

	s, err := Load(strings.NewReader(input), Config{
		Delimiter: Comma,
		SkipRows:  1,
		Comment:   '#',
		SpecCol:   1,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Expected 2 samples, got %d", s.Len())
	}
	if s.YData()[1] != 20 {
		t.Errorf("Expected signal 20, got %v", s.YData()[1])
	}
}

func TestLoadSpaceSeparatedCollapsesRuns(t *testing.T) {
	input := "1.0   10.0\n2.0  20.0\n3.0 30.0\n"

	s, err := Load(strings.NewReader(input), Config{Delimiter: Space, SpecCol: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 samples, got %d", s.Len())
	}
	if s.XData()[2] != 3 || s.YData()[0] != 10 {
		t.Errorf("Unexpected data: x=%v y=%v", s.XData(), s.YData())
	}
}

func TestLoadSingleColumnSynthesizesDomain(t *testing.T) {
	input := "5.0\n6.0\n7.0\n8.0\n"

	s, err := Load(strings.NewReader(input), Config{SpecCol: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []float64{0, 1, 2, 3}
	for i, v := range s.XData() {
		if v != want[i] {
			t.Fatalf("Expected synthesized domain %v, got %v", want, s.XData())
		}
	}
	if s.YData()[3] != 8 {
		t.Errorf("Expected signal 8, got %v", s.YData()[3])
	}
}

func TestLoadSelectsColumnsFromWideTable(t *testing.T) {
	input := "0.0,1.0,100.0\n1.0,2.0,200.0\n"

	s, err := Load(strings.NewReader(input), Config{Delimiter: Comma, FreqCol: 1, SpecCol: 2})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.XData()[1] != 2 || s.YData()[1] != 200 {
		t.Errorf("Column selection wrong: x=%v y=%v", s.XData(), s.YData())
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cfg   Config
	}{
		{"empty input", "", Config{SpecCol: 1}},
		{"non-numeric", "1.0\tbad\n", Config{SpecCol: 1}},
		{"column out of range", "1.0\t2.0\n", Config{FreqCol: 0, SpecCol: 4}},
		{"same column twice", "1.0\t2.0\n", Config{FreqCol: 1, SpecCol: 1}},
		{"negative column", "1.0\t2.0\n", Config{FreqCol: -1, SpecCol: 1}},
		{"unknown delimiter", "1.0;2.0\n", Config{Delimiter: "Semicolon", SpecCol: 1}},
	}
	for _, c := range cases {
		if _, err := Load(strings.NewReader(c.input), c.cfg); !errors.Is(err, ErrParse) {
			t.Errorf("%s: err = %v, want ErrParse", c.name, err)
		}
	}
}

func TestLoadErrorNamesCause(t *testing.T) {
	_, err := Load(strings.NewReader("1.0\toops\n"), Config{SpecCol: 1})
	if err == nil || !strings.HasPrefix(err.Error(), "parse failed: ") {
		t.Fatalf("Expected 'parse failed: <cause>', got %v", err)
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("Expected the cause to name the bad field, got %v", err)
	}
}
