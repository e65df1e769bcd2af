// Package demo holds the sample transforms and scenarios run by the
// bindchain CLI: a forking sequence, integer-only optional arithmetic and
// annotated arithmetic/emoji decoration.
//
// Every transform returns a fully wrapped container; out-of-domain input
// (non-integers, NaN, ±Inf) yields Nothing instead of an error.
package demo
