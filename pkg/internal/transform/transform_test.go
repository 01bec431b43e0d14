package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

func makeSpectrum(t *testing.T, x, y []float64) *spectrum.Spectrum {
	t.Helper()
	s, err := spectrum.FromArrays(x, y, spectrum.WithName("raw"))
	if err != nil {
		t.Fatalf("FromArrays failed: %v", err)
	}
	return s
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v within %v", name, got, want, tol)
	}
}

func TestRescaleMapsOntoRange(t *testing.T) {
	s := makeSpectrum(t, []float64{0, 1, 2, 3}, []float64{10, 20, 30, 40})

	out, err := Rescale(s, 0, 1)
	if err != nil {
		t.Fatalf("Rescale failed: %v", err)
	}

	y := out.YData()
	assertClose(t, "first", y[0], 0, 1e-12)
	assertClose(t, "last", y[3], 1, 1e-12)
	assertClose(t, "interior", y[1], 1.0/3, 1e-12)

	if s.YData()[0] != 10 {
		t.Fatalf("source spectrum was mutated")
	}
	if len(out.History()) != 1 || out.History()[0].Op != types.OpRescale {
		t.Fatalf("rescale must record exactly one history entry")
	}
}

func TestRescaleConstantSignal(t *testing.T) {
	s := makeSpectrum(t, []float64{0, 1, 2}, []float64{5, 5, 5})

	out, err := Rescale(s, 2, 8)
	if err != nil {
		t.Fatalf("Rescale failed: %v", err)
	}
	for _, v := range out.YData() {
		assertClose(t, "constant", v, 2, 1e-12)
	}
}

func TestAbsorbanceTransmittanceRoundTrip(t *testing.T) {
	s := makeSpectrum(t, []float64{0, 1, 2}, []float64{0.9, 0.5, 0.1})

	a, err := ToAbsorbance(s)
	if err != nil {
		t.Fatalf("ToAbsorbance failed: %v", err)
	}
	back, err := ToTransmittance(a)
	if err != nil {
		t.Fatalf("ToTransmittance failed: %v", err)
	}

	for i, v := range back.YData() {
		assertClose(t, "round trip", v, s.YData()[i], 1e-12)
	}
	if len(back.History()) != 2 {
		t.Fatalf("history length = %d, want 2", len(back.History()))
	}
}

func TestBoxcarSmoothInterior(t *testing.T) {
	x := utils.Linspace(0, 9, 10)
	y := make([]float64, 10)
	for i := range y {
		y[i] = 4
	}
	s := makeSpectrum(t, x, y)

	out, err := BoxcarSmooth(s, 3)
	if err != nil {
		t.Fatalf("BoxcarSmooth failed: %v", err)
	}
	// Zero padding bends the edges; the interior of a constant signal is untouched.
	for i := 1; i < 9; i++ {
		assertClose(t, "interior", out.YData()[i], 4, 1e-12)
	}
}

func TestGaussianSmoothMatchesDirectConvolution(t *testing.T) {
	x := utils.Linspace(0, 19, 20)
	y := make([]float64, 20)
	y[10] = 1
	s := makeSpectrum(t, x, y)

	out, err := GaussianSmooth(s, 5, 1.5)
	if err != nil {
		t.Fatalf("GaussianSmooth failed: %v", err)
	}

	win := make([]float64, 5)
	var sum float64
	for i := range win {
		d := float64(i) - 2
		win[i] = math.Exp(-d * d / (2 * 1.5 * 1.5))
		sum += win[i]
	}
	for i := range win {
		win[i] /= sum
	}
	want := convolveSame(y, win)

	for i, v := range out.YData() {
		assertClose(t, "fft vs direct", v, want[i], 1e-9)
	}
}

func TestSavGolReproducesPolynomial(t *testing.T) {
	n := 21
	y := make([]float64, n)
	for i := range y {
		tt := float64(i)
		y[i] = 3 + 2*tt + 0.5*tt*tt
	}

	out, err := SavGol(y, 7, 2, 0, 1)
	if err != nil {
		t.Fatalf("SavGol failed: %v", err)
	}
	// A quadratic fit reproduces a quadratic exactly, edges included.
	for i := range y {
		assertClose(t, "smoothed", out[i], y[i], 1e-8)
	}

	d1, err := SavGol(y, 7, 2, 1, 2)
	if err != nil {
		t.Fatalf("SavGol derivative failed: %v", err)
	}
	// dy/dx for x = 2*i is (2 + i) / 2.
	for i := range y {
		assertClose(t, "derivative", d1[i], (2+float64(i))/2, 1e-8)
	}
}

func TestSavGolRejectsBadParams(t *testing.T) {
	y := make([]float64, 10)

	cases := []struct {
		name              string
		window, polyorder int
		deriv             int
		delta             float64
	}{
		{"even window", 4, 2, 0, 1},
		{"order too high", 5, 5, 0, 1},
		{"deriv above order", 5, 2, 3, 1},
		{"window above signal", 11, 2, 0, 1},
		{"zero delta", 5, 2, 0, 0},
	}
	for _, c := range cases {
		if _, err := SavGol(y, c.window, c.polyorder, c.deriv, c.delta); !errors.Is(err, ErrBadParams) {
			t.Fatalf("%s: err = %v, want ErrBadParams", c.name, err)
		}
	}
}

func TestPolynomialBaselineRemovesSlope(t *testing.T) {
	x := utils.Linspace(0, 99, 100)
	y := make([]float64, 100)
	for i, v := range x {
		d := v - 50
		y[i] = 0.1*v + 2 + 3*math.Exp(-d*d/(2*16))
	}
	s := makeSpectrum(t, x, y)

	// Fit on everything outside the band region, then subtract everywhere.
	out, err := PolynomialBaseline(s, 30, 70, 1, true)
	if err != nil {
		t.Fatalf("PolynomialBaseline failed: %v", err)
	}

	got := out.YData()
	assertClose(t, "left tail", got[5], 0, 1e-4)
	assertClose(t, "right tail", got[95], 0, 1e-4)
	assertClose(t, "band apex", got[50], 3, 1e-3)
}

func TestBaselineRejectsThinRegion(t *testing.T) {
	s := makeSpectrum(t, []float64{0, 1, 2, 3}, []float64{1, 2, 3, 4})

	if _, err := PolynomialBaseline(s, 0.5, 1.5, 3, false); !errors.Is(err, ErrBadParams) {
		t.Fatalf("thin region: err = %v, want ErrBadParams", err)
	}
}

func TestShiftAndScaleX(t *testing.T) {
	s := makeSpectrum(t, []float64{1, 2, 3}, []float64{5, 6, 7})

	shifted, err := ShiftX(s, 10)
	if err != nil {
		t.Fatalf("ShiftX failed: %v", err)
	}
	if shifted.XData()[0] != 11 || shifted.XData()[2] != 13 {
		t.Fatalf("ShiftX domain = %v", shifted.XData())
	}

	scaled, err := ScaleX(shifted, 2)
	if err != nil {
		t.Fatalf("ScaleX failed: %v", err)
	}
	if scaled.XData()[0] != 22 {
		t.Fatalf("ScaleX domain = %v", scaled.XData())
	}
	if _, err := ScaleX(s, 0); !errors.Is(err, ErrBadParams) {
		t.Fatalf("zero factor: err = %v, want ErrBadParams", err)
	}
}

func TestRenameRecordsProvenance(t *testing.T) {
	s := makeSpectrum(t, []float64{1, 2}, []float64{3, 4})

	out, err := Rename(s, "corrected")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if out.Label() != "corrected" || s.Label() != "raw" {
		t.Fatalf("rename must only touch the copy: got %q and %q", out.Label(), s.Label())
	}
	if _, err := Rename(s, ""); !errors.Is(err, ErrBadParams) {
		t.Fatalf("empty name: err = %v, want ErrBadParams", err)
	}
}

func TestReplayReproducesChain(t *testing.T) {
	x := utils.Linspace(0, 9, 10)
	y := []float64{1, 4, 2, 8, 5, 7, 3, 6, 9, 2}
	donorBase := makeSpectrum(t, x, y)

	donor, err := Rescale(donorBase, 0, 1)
	if err != nil {
		t.Fatalf("Rescale failed: %v", err)
	}
	donor, err = BoxcarSmooth(donor, 3)
	if err != nil {
		t.Fatalf("BoxcarSmooth failed: %v", err)
	}
	donor, err = ShiftX(donor, 100)
	if err != nil {
		t.Fatalf("ShiftX failed: %v", err)
	}
	donor, err = Rename(donor, "processed")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	base := makeSpectrum(t, x, y)
	replayed, err := Replay(base, donor)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	for i := range donor.YData() {
		assertClose(t, "signal", replayed.YData()[i], donor.YData()[i], 1e-12)
		assertClose(t, "domain", replayed.XData()[i], donor.XData()[i], 1e-12)
	}
	if replayed.Label() != "processed" {
		t.Fatalf("replay must reproduce the recorded rename, got %q", replayed.Label())
	}
	if len(replayed.History()) != len(donor.History()) {
		t.Fatalf("history length %d, want %d", len(replayed.History()), len(donor.History()))
	}
}

func TestReplayUnknownOperation(t *testing.T) {
	s := makeSpectrum(t, []float64{1, 2}, []float64{3, 4})

	_, err := Apply(s, types.HistoryEntry{Kind: types.HistorySpec, Op: types.OpKind("fold")})
	if !errors.Is(err, spectrum.ErrHistory) {
		t.Fatalf("unknown op: err = %v, want spectrum.ErrHistory", err)
	}
}
