package builder

import (
	"io"

	"github.com/spectralsuite/peaks/pkg/internal/loader"
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
)

// LoaderConfig selects how delimited text is split into a spectrum.
type LoaderConfig = loader.Config

// Delimiter names the recognized column separators.
type Delimiter = loader.Delimiter

const (
	Tab   = loader.Tab
	Space = loader.Space
	Comma = loader.Comma
)

// ErrParse is the sentinel wrapped by loader input faults.
var ErrParse = loader.ErrParse

// Load parses delimited text into a Spectrum.
func Load(r io.Reader, cfg loader.Config) (*spectrum.Spectrum, error) {
	return loader.Load(r, cfg)
}
