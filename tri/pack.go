// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

// Dpack packs the lower triangle of the n×n row-major matrix A into tril.
//
// For example, when n = 3, Dpack converts
//
//	A = a00  a01  a02
//	    a10  a11  a12
//	    a20  a21  a22
//
// to
//
//	tril = [a00 a10 a11 a20 a21 a22]
//
// Only the lower triangle of A including the diagonal is referenced; the
// strict upper triangle is ignored even if populated.
func Dpack(n int, a []float64, lda int, tril []float64) {
	switch {
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
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}

	ij := 0
	for i := 0; i < n; i++ {
		copy(tril[ij:ij+i+1], a[i*lda:i*lda+i+1])
		ij += i + 1
	}
}

// Zpack packs the lower triangle of the n×n row-major matrix A into tril.
// It behaves exactly as Dpack.
func Zpack(n int, a []complex128, lda int, tril []complex128) {
	switch {
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
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}

	ij := 0
	for i := 0; i < n; i++ {
		copy(tril[ij:ij+i+1], a[i*lda:i*lda+i+1])
		ij += i + 1
	}
}

// Dunpack expands the packed lower triangle tril into the n×n row-major
// matrix A and completes the upper triangle according to kind.
//
// For example, when n = 3 and kind == Symmetric, Dunpack converts
//
//	tril = [a00 a10 a11 a20 a21 a22]
//
// to
//
//	A = a00  a10  a20
//	    a10  a11  a21
//	    a20  a21  a22
//
// When kind == None only the lower triangle of A is written and the strict
// upper triangle retains its previous contents. Otherwise the upper
// triangle is filled by Dmirror with the same kind.
func Dunpack(kind Kind, n int, tril []float64, a []float64, lda int) {
	switch {
	case kind != None && kind != Symmetric && kind != Antisymmetric && kind != Hermitian && kind != AntiHermitian:
		panic(badKind)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}
	if n == 0 {
		return
	}
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}
	if len(a) < (n-1)*lda+n {
		panic(shortA)
	}

	ij := 0
	for i := 0; i < n; i++ {
		copy(a[i*lda:i*lda+i+1], tril[ij:ij+i+1])
		ij += i + 1
	}
	if kind != None {
		Dmirror(kind, n, a, lda)
	}
}

// Zunpack expands the packed lower triangle tril into the n×n row-major
// matrix A and completes the upper triangle according to kind, applying
// conjugation for the Hermitian and AntiHermitian kinds as described in
// Zmirror. When kind == None only the lower triangle of A is written.
func Zunpack(kind Kind, n int, tril []complex128, a []complex128, lda int) {
	switch {
	case kind != None && kind != Symmetric && kind != Antisymmetric && kind != Hermitian && kind != AntiHermitian:
		panic(badKind)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}
	if n == 0 {
		return
	}
	if len(tril) < n*(n+1)/2 {
		panic(shortTril)
	}
	if len(a) < (n-1)*lda+n {
		panic(shortA)
	}

	ij := 0
	for i := 0; i < n; i++ {
		copy(a[i*lda:i*lda+i+1], tril[ij:ij+i+1])
		ij += i + 1
	}
	if kind != None {
		Zmirror(kind, n, a, lda)
	}
}
