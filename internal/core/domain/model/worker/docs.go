// Package worker contains the Constraints value object: a worker's validated
// time and income requirements, including fixed weekly commitments that
// matched jobs must schedule around.
package worker
