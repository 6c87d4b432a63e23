// Package analysis characterizes trajectories of the Lorenz system.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via renormalized
//     trajectory separation
//   - [PowerSpectrum]: windowed FFT magnitudes of one coordinate
//   - [DominantFrequency]: strongest oscillation of one coordinate
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(integ, field, x0, dt, 1000, 20000, 1e-8)
//	if lambda > 0 {
//	    // chaotic for these coefficients
//	}
package analysis
