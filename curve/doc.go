// Package curve turns tabulated throughput measurements into evaluable
// wavelength curves.
//
// A [Tabulated] curve is fitted once from (wavelength, value) samples and can
// then be resampled onto arbitrary wavelength grids:
//
//   - between measured samples it interpolates piecewise-linearly
//   - outside the measured range it holds the nearest endpoint value
//
// The endpoint-hold rule keeps resampling deterministic on grids wider than
// the measurement: band tables that fall to zero at their measured edges stay
// zero beyond them instead of picking up extrapolation artifacts.
package curve
