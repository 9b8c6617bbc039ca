// Package geom provides the numeric kernel shared by every other package in
// this module: a single real-number type, epsilon-tolerant comparisons, and
// the distance/orientation primitives the sweepline engine and the clippers
// are built on.
//
// Everything here is a value type with no allocation beyond what the caller
// already holds; nothing in this package retains a reference to its inputs.
package geom
