// Package graphics holds the geometric primitives layout results are expressed in.
//
// All coordinates are logical points stored as [Float]. Every type is a plain
// comparable value: == compares fields exactly, with no tolerance.
package graphics
