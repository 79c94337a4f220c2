// Package poly implements the polynomial machinery the FLP engine is built
// on: stripping, multiplication, Horner evaluation, Lagrange interpolation
// at arbitrary distinct points, and interpolation over a power-of-two grid
// of roots of unity.
//
// A Poly is a value type: an ordered, low-degree-first slice of field.Elem
// coefficients. Nothing here mutates its receiver; every operation returns a
// new Poly.
package poly
