// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package take provides accumulating gather and scatter of rectangular
// matrix blocks through row and column index lists.
//
// All matrices are stored in row-major order in flat slices with an
// explicit leading dimension. The index lists select rows and columns of
// the larger matrix; they need not be sorted or unique, and repeated
// indices accumulate repeatedly. Destinations are always accumulated
// into, never overwritten, so a fresh gather or scatter requires the
// caller to zero the destination first.
//
// The routines never allocate and hold no state. Dimensions and slice
// lengths are checked at entry and violations panic; the index list
// contents are not pre-validated, an out-of-range index panics at the
// offending access.
package take

const (
	badLdSrc = "take: bad leading dimension of source"
	badLdDst = "take: bad leading dimension of destination"
	shortSrc = "take: insufficient length of source"
	shortDst = "take: insufficient length of destination"
)

// Dgather accumulates the block of src selected by the index lists into
// the dense len(idx)×len(idy) block at the start of dst:
//
//	dst[i*odim+j] += src[idx[i]*idim+idy[j]]
//
// for all i < len(idx) and j < len(idy). idim and odim are the leading
// dimensions of src and dst. Every value in idx and idy must address a
// row and column within src.
func Dgather(dst []float64, odim int, src []float64, idim int, idx, idy []int) {
	nx, ny := len(idx), len(idy)
	switch {
	case odim < max(1, ny):
		panic(badLdDst)
	case idim < 1:
		panic(badLdSrc)
	}
	if nx == 0 || ny == 0 {
		return
	}
	if len(dst) < (nx-1)*odim+ny {
		panic(shortDst)
	}

	for i, ix := range idx {
		row := src[ix*idim : ix*idim+idim]
		out := dst[i*odim : i*odim+ny]
		for j, iy := range idy {
			out[j] += row[iy]
		}
	}
}

// Dscatter accumulates the dense len(idx)×len(idy) block at the start of
// src into the positions of dst selected by the index lists:
//
//	dst[idx[i]*odim+idy[j]] += src[i*idim+j]
//
// for all i < len(idx) and j < len(idy). Because the index lists may
// repeat, several block entries can accumulate into the same destination
// element; the contributions sum.
func Dscatter(dst []float64, odim int, src []float64, idim int, idx, idy []int) {
	nx, ny := len(idx), len(idy)
	switch {
	case odim < 1:
		panic(badLdDst)
	case idim < max(1, ny):
		panic(badLdSrc)
	}
	if nx == 0 || ny == 0 {
		return
	}
	if len(src) < (nx-1)*idim+ny {
		panic(shortSrc)
	}

	for i, ix := range idx {
		in := src[i*idim : i*idim+ny]
		out := dst[ix*odim : ix*odim+odim]
		for j, iy := range idy {
			out[iy] += in[j]
		}
	}
}

// Zgather accumulates the block of src selected by the index lists into
// the dense block at the start of dst. It behaves exactly as Dgather.
func Zgather(dst []complex128, odim int, src []complex128, idim int, idx, idy []int) {
	nx, ny := len(idx), len(idy)
	switch {
	case odim < max(1, ny):
		panic(badLdDst)
	case idim < 1:
		panic(badLdSrc)
	}
	if nx == 0 || ny == 0 {
		return
	}
	if len(dst) < (nx-1)*odim+ny {
		panic(shortDst)
	}

	for i, ix := range idx {
		row := src[ix*idim : ix*idim+idim]
		out := dst[i*odim : i*odim+ny]
		for j, iy := range idy {
			out[j] += row[iy]
		}
	}
}

// Zscatter accumulates the dense block at the start of src into the
// positions of dst selected by the index lists. It behaves exactly as
// Dscatter.
func Zscatter(dst []complex128, odim int, src []complex128, idim int, idx, idy []int) {
	nx, ny := len(idx), len(idy)
	switch {
	case odim < 1:
		panic(badLdDst)
	case idim < max(1, ny):
		panic(badLdSrc)
	}
	if nx == 0 || ny == 0 {
		return
	}
	if len(src) < (nx-1)*idim+ny {
		panic(shortSrc)
	}

	for i, ix := range idx {
		in := src[i*idim : i*idim+ny]
		out := dst[ix*odim : ix*odim+odim]
		for j, iy := range idy {
			out[iy] += in[j]
		}
	}
}
