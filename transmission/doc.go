// Package transmission computes total system transmission curves for a
// survey camera: instrumental throughput per band and detector multiplied
// by atmospheric transmission, either per exposure or for the standard
// reference atmosphere.
//
// Both inputs are tabulated on their own wavelength grids. The model
// evaluates them on one shared grid using piecewise-linear interpolation:
//
//   - Instrumental curves are resampled once per grid and cached, since a
//     calibration run evaluates many exposures on the same grid
//   - Per-exposure atmosphere rows are interpolated on demand
//   - Interpolated throughputs are clamped at zero; physical throughputs
//     cannot be negative
//
// Grids need not cover the measured range. Outside it a curve holds its
// endpoint value, so tables measured only inside a band's passband
// extrapolate flat rather than to zero.
//
// # Usage
//
// Load the two tables, then query curves on the default grid:
//
//	model, err := transmission.Load(instSrc, atmSrc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	std, _ := model.Standard("g")             // standard atmosphere
//	tot, _ := model.Transmission("g", 226650, 3) // exposure 226650, ccd 3
//
// A custom grid can be set once up front or passed per query:
//
//	grid := transmission.DefaultWavelengths()
//	tot, _ := model.TransmissionAt("g", 226650, 3, grid)
package transmission
