// Package analysis provides post-run trajectory analysis: largest
// Lyapunov exponent estimation for chaos detection and power spectra
// for normal-mode identification.
package analysis
