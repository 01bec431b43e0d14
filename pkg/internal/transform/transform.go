// Package transform implements the closed library of spectrum transforms and the
// dispatch table that resolves recorded history entries back to executable operations.
//
// Every operation here is deterministic: the same input sequences and parameters always
// produce the same output. That property is what makes a Spectrum's recorded history
// replayable onto an independent base. Operations are registered in a fixed table keyed
// by types.OpKind; history entries carry the key plus a serializable parameter struct,
// never a raw callable.
package transform

import (
	"errors"
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ErrBadParams reports transform parameters outside the operation's accepted range.
var ErrBadParams = errors.New("invalid transform parameters")

// Table is the closed dispatch table over the recognized operation set. It implements
// spectrum.Resolver, so a populated Table is all a history replay needs.
type Table struct {
	spec     map[types.OpKind]spectrum.SpecFunc
	freq     map[types.OpKind]spectrum.FreqFunc
	specFreq map[types.OpKind]spectrum.SpecFreqFunc
	object   map[types.OpKind]spectrum.ObjectFunc
}

// NewTable builds the canonical table with every recognized operation registered.
func NewTable() *Table {
	return &Table{
		spec: map[types.OpKind]spectrum.SpecFunc{
			types.OpRescale:          rescaleFunc,
			types.OpToAbsorbance:     toAbsorbanceFunc,
			types.OpToTransmittance:  toTransmittanceFunc,
			types.OpBoxcarSmooth:     boxcarFunc,
			types.OpTriangularSmooth: triangularFunc,
			types.OpGaussianSmooth:   gaussianFunc,
			types.OpSavGolSmooth:     savgolFunc,
		},
		freq: map[types.OpKind]spectrum.FreqFunc{
			types.OpShiftX: shiftXFunc,
			types.OpScaleX: scaleXFunc,
		},
		specFreq: map[types.OpKind]spectrum.SpecFreqFunc{
			types.OpPolynomialBaseline: baselineFunc,
		},
		object: map[types.OpKind]spectrum.ObjectFunc{
			types.OpRename: renameFunc,
		},
	}
}

func (t *Table) ResolveSpec(op types.OpKind) (spectrum.SpecFunc, bool) {
	fn, ok := t.spec[op]
	return fn, ok
}

func (t *Table) ResolveFreq(op types.OpKind) (spectrum.FreqFunc, bool) {
	fn, ok := t.freq[op]
	return fn, ok
}

func (t *Table) ResolveSpecFreq(op types.OpKind) (spectrum.SpecFreqFunc, bool) {
	fn, ok := t.specFreq[op]
	return fn, ok
}

func (t *Table) ResolveObject(op types.OpKind) (spectrum.ObjectFunc, bool) {
	fn, ok := t.object[op]
	return fn, ok
}

// Replay folds donor's history onto base through the canonical table.
func Replay(base, donor *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return base.ApplyHistory(donor, NewTable())
}

func badParams(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadParams, fmt.Sprintf(format, args...))
}
