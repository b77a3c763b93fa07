// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

// DunpackRow extracts row r of the symmetric matrix stored in the packed
// lower triangle tril into dst, without expanding the full matrix.
//
// Elements left of and on the diagonal come from the contiguous packed
// segment of row r; elements right of the diagonal are the mirrored
// column entries tril[j*(j+1)/2+r] for j > r. The stored values are
// reproduced as-is with no sign or conjugation applied, so DunpackRow
// always yields the row of the Symmetric expansion of tril.
//
// DunpackRow panics if r is outside [0, n).
func DunpackRow(n, r int, tril, dst []float64) {
	switch {
	case n < 0:
		panic(nLT0)
	case r < 0 || n <= r:
		panic(badRow)
	}
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}
	if len(dst) < n {
		panic(shortDst)
	}

	off := r * (r + 1) / 2
	copy(dst[:r+1], tril[off:off+r+1])
	for j := r + 1; j < n; j++ {
		dst[j] = tril[j*(j+1)/2+r]
	}
}

// ZunpackRow extracts row r of the complex symmetric matrix stored in the
// packed lower triangle tril into dst. As with DunpackRow the stored
// values are reproduced without conjugation, so the result is the row of
// the Symmetric expansion of tril, not of the Hermitian one.
func ZunpackRow(n, r int, tril, dst []complex128) {
	switch {
	case n < 0:
		panic(nLT0)
	case r < 0 || n <= r:
		panic(badRow)
	}
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}
	if len(dst) < n {
		panic(shortDst)
	}

	off := r * (r + 1) / 2
	copy(dst[:r+1], tril[off:off+r+1])
	for j := r + 1; j < n; j++ {
		dst[j] = tril[j*(j+1)/2+r]
	}
}
