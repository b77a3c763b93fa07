// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
)

// Dtranspose stores the transpose of the m×n row-major matrix src into
// the n×m matrix dst. src and dst must not overlap.
//
// The matrices are traversed in square tiles of the same edge length used
// by Dmirror; the tiling only affects the access pattern, never the
// result.
func Dtranspose(m, n int, src []float64, lds int, dst []float64, ldd int) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lds < max(1, n):
		panic(badLdSrc)
	case ldd < max(1, m):
		panic(badLdDst)
	}
	if m == 0 || n == 0 {
		return
	}
	if len(src) < (m-1)*lds+n {
		panic(shortSrc)
	}
	if len(dst) < (n-1)*ldd+m {
		panic(shortDst)
	}

	for ic := 0; ic < m; ic += blockDim {
		ic1 := min(ic+blockDim, m)
		for jc := 0; jc < n; jc += blockDim {
			jc1 := min(jc+blockDim, n)
			for i := ic; i < ic1; i++ {
				for j := jc; j < jc1; j++ {
					dst[j*ldd+i] = src[i*lds+j]
				}
			}
		}
	}
}

// Ztranspose stores the plain or conjugate transpose of the m×n row-major
// matrix src into the n×m matrix dst. trans must be blas.Trans or
// blas.ConjTrans. src and dst must not overlap.
func Ztranspose(trans blas.Transpose, m, n int, src []complex128, lds int, dst []complex128, ldd int) {
	switch {
	case trans != blas.Trans && trans != blas.ConjTrans:
		panic(badTrans)
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lds < max(1, n):
		panic(badLdSrc)
	case ldd < max(1, m):
		panic(badLdDst)
	}
	if m == 0 || n == 0 {
		return
	}
	if len(src) < (m-1)*lds+n {
		panic(shortSrc)
	}
	if len(dst) < (n-1)*ldd+m {
		panic(shortDst)
	}

	if trans == blas.Trans {
		for ic := 0; ic < m; ic += blockDim {
			ic1 := min(ic+blockDim, m)
			for jc := 0; jc < n; jc += blockDim {
				jc1 := min(jc+blockDim, n)
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						dst[j*ldd+i] = src[i*lds+j]
					}
				}
			}
		}
	} else {
		for ic := 0; ic < m; ic += blockDim {
			ic1 := min(ic+blockDim, m)
			for jc := 0; jc < n; jc += blockDim {
				jc1 := min(jc+blockDim, n)
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						dst[j*ldd+i] = cmplx.Conj(src[i*lds+j])
					}
				}
			}
		}
	}
}
