// Package uc8151 drives UC8151 based monochrome e-paper panels such as the
// 2.9" 296x128 module fitted to Badger class boards.
//
// The controller keeps a column major frame buffer: each byte holds 8
// vertical pixels, most significant bit on top, and a set bit is white.
// Partial refreshes work on whole 8 pixel banks, so the vertical origin and
// height of a partial window must be multiples of 8.
//
// The controller and error handling layout is based on the periph.io
// waveshare2in13v2 driver (periph.io/x/devices/v3, Apache License 2.0).
package uc8151
