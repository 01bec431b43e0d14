// Package loader parses delimited text into spectra. It accepts the common export
// shapes: two numeric columns (domain, signal), wider tables with the columns selected
// by index, and single-column signals for which a uniform 0..n-1 domain is synthesized.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// ErrParse is the sentinel wrapped by every input fault this package reports.
var ErrParse = errors.New("parse failed")

// Delimiter names the recognized column separators.
type Delimiter string

const (
	Tab   Delimiter = "Tab"
	Space Delimiter = "Space"
	Comma Delimiter = "Comma"
)

func (d Delimiter) rune() (rune, error) {
	switch d {
	case Tab, "":
		return '\t', nil
	case Space:
		return ' ', nil
	case Comma:
		return ',', nil
	}
	return 0, parseErr("unknown delimiter %q", string(d))
}

// Config selects how the text is split and which columns feed the spectrum. The zero
// value reads tab-separated two-column data into columns 0 and 1.
type Config struct {
	Delimiter Delimiter
	SkipRows  int
	Comment   rune
	FreqCol   int
	SpecCol   int
	FreqUnit  string
	SpecUnit  string
	Name      string
}

// Load parses r into a Spectrum. Any malformed input surfaces as an error wrapping
// ErrParse with the underlying cause in its message.
func Load(r io.Reader, cfg Config) (*spectrum.Spectrum, error) {
	if cfg.FreqCol < 0 || cfg.SpecCol < 0 {
		return nil, parseErr("column indexes must be non-negative, got %d and %d", cfg.FreqCol, cfg.SpecCol)
	}
	if cfg.FreqCol == cfg.SpecCol {
		return nil, parseErr("domain and signal must come from distinct columns, both are %d", cfg.FreqCol)
	}

	delim, err := cfg.Delimiter.rune()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.Comment = cfg.Comment
	reader.FieldsPerRecord = -1
	// TrimLeadingSpace and a space delimiter fight each other; runs of spaces are
	// handled below by dropping empty fields instead.
	reader.TrimLeadingSpace = delim != ' '

	var x, y []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseErr("%v", err)
		}
		row++
		if row <= cfg.SkipRows {
			continue
		}

		fields := record[:0:0]
		for _, f := range record {
			if f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			continue
		}

		if len(fields) == 1 {
			// Single-column data carries only the signal; the domain is synthesized
			// after reading.
			v, err := parseField(fields[0], row)
			if err != nil {
				return nil, err
			}
			y = append(y, v)
			continue
		}

		if cfg.FreqCol >= len(fields) || cfg.SpecCol >= len(fields) {
			return nil, parseErr("row %d has %d columns, need columns %d and %d", row, len(fields), cfg.FreqCol, cfg.SpecCol)
		}
		xv, err := parseField(fields[cfg.FreqCol], row)
		if err != nil {
			return nil, err
		}
		yv, err := parseField(fields[cfg.SpecCol], row)
		if err != nil {
			return nil, err
		}
		x = append(x, xv)
		y = append(y, yv)
	}

	if len(y) == 0 {
		return nil, parseErr("no data rows")
	}
	if len(x) == 0 {
		if len(y) == 1 {
			x = []float64{0}
		} else {
			x = utils.Linspace(0, float64(len(y)-1), len(y))
		}
	}
	if len(x) != len(y) {
		return nil, parseErr("mixed single-column and two-column rows")
	}

	name := cfg.Name
	if name == "" {
		name = "loaded"
	}
	s, err := spectrum.FromArrays(x, y,
		spectrum.WithName(name),
		spectrum.WithXUnit(cfg.FreqUnit),
		spectrum.WithYUnit(cfg.SpecUnit),
	)
	if err != nil {
		return nil, parseErr("%v", err)
	}
	return s, nil
}

func parseField(field string, row int) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, parseErr("row %d: %q is not numeric", row, field)
	}
	return v, nil
}

func parseErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
