// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import "math/cmplx"

// Dmirror fills the strict upper triangle of the n×n row-major matrix A
// from its lower triangle according to kind. The diagonal and the lower
// triangle are not modified.
//
// For example, when n = 3 and kind == Symmetric, Dmirror converts
//
//	A = a00   *    *
//	    a10  a11   *
//	    a20  a21  a22
//
// to
//
//	A = a00  a10  a20
//	    a10  a11  a21
//	    a20  a21  a22
//
// and when kind == Antisymmetric to
//
//	A = a00 -a10 -a20
//	    a10  a11 -a21
//	    a20  a21  a22
//
// In these examples elements marked as * are not referenced. For float64
// elements conjugation is a no-op, so Hermitian behaves as Symmetric and
// AntiHermitian as Antisymmetric.
//
// The matrix is traversed in square tiles so that the source and
// destination of each mirrored element stay cache-resident; the result is
// independent of the tiling.
func Dmirror(kind Kind, n int, a []float64, lda int) {
	switch {
	case kind != Symmetric && kind != Antisymmetric && kind != Hermitian && kind != AntiHermitian:
		panic(badKind)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}
	if n == 0 {
		return
	}
	if len(a) < (n-1)*lda+n {
		panic(shortA)
	}

	if kind == Symmetric || kind == Hermitian {
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			// Full tiles strictly below the diagonal band.
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = a[i*lda+j]
					}
				}
			}
			// The tile straddling the diagonal.
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = a[i*lda+j]
				}
			}
		}
	} else {
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = -a[i*lda+j]
					}
				}
			}
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = -a[i*lda+j]
				}
			}
		}
	}
}

// Zmirror fills the strict upper triangle of the n×n row-major matrix A
// from its lower triangle according to kind. The diagonal and the lower
// triangle are not modified; in particular Hermitian does not force the
// diagonal real.
//
// Zmirror uses the same tiled traversal as Dmirror.
func Zmirror(kind Kind, n int, a []complex128, lda int) {
	switch {
	case kind != Symmetric && kind != Antisymmetric && kind != Hermitian && kind != AntiHermitian:
		panic(badKind)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}
	if n == 0 {
		return
	}
	if len(a) < (n-1)*lda+n {
		panic(shortA)
	}

	switch kind {
	case Symmetric:
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = a[i*lda+j]
					}
				}
			}
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = a[i*lda+j]
				}
			}
		}
	case Antisymmetric:
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = -a[i*lda+j]
					}
				}
			}
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = -a[i*lda+j]
				}
			}
		}
	case Hermitian:
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = cmplx.Conj(a[i*lda+j])
					}
				}
			}
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = cmplx.Conj(a[i*lda+j])
				}
			}
		}
	case AntiHermitian:
		for ic := 0; ic < n; ic += blockDim {
			ic1 := min(ic+blockDim, n)
			for jc := 0; jc < ic; jc += blockDim {
				jc1 := jc + blockDim
				for i := ic; i < ic1; i++ {
					for j := jc; j < jc1; j++ {
						a[j*lda+i] = -cmplx.Conj(a[i*lda+j])
					}
				}
			}
			for i := ic; i < ic1; i++ {
				for j := ic; j < i; j++ {
					a[j*lda+i] = -cmplx.Conj(a[i*lda+j])
				}
			}
		}
	}
}
