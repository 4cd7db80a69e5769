// Package analysis provides chaos and frequency analysis of Lorenz runs.
//
//   - [Separation]: distance between two trajectories started delta apart
//   - [LyapunovExponent]: largest Lyapunov exponent via renormalized separation
//   - [PowerSpectrum], [DominantFrequency]: FFT of one coordinate series
//   - [Project], [ProjectionToASCII]: 2D phase portraits
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(x0, cfg, 20000, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
