// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

// Kind specifies the relation between the lower and upper triangle of a
// square matrix.
type Kind byte

const (
	// None requests no relation: the upper triangle is left untouched.
	None Kind = 0
	// Symmetric copies the lower triangle, A[i,j] = A[j,i].
	Symmetric Kind = 'S'
	// Antisymmetric negates the lower triangle, A[i,j] = -A[j,i].
	Antisymmetric Kind = 'A'
	// Hermitian conjugates the lower triangle, A[i,j] = conj(A[j,i]).
	// For real element types Hermitian is equivalent to Symmetric.
	Hermitian Kind = 'H'
	// AntiHermitian negates the conjugated lower triangle,
	// A[i,j] = -conj(A[j,i]). For real element types AntiHermitian is
	// equivalent to Antisymmetric.
	AntiHermitian Kind = 'N'
)

// blockDim is the tile edge length used by the blocked kernels. It only
// affects the traversal order, never the result.
const blockDim = 104

const (
	badKind   = "tri: bad relation kind"
	badTrans  = "tri: bad transpose"
	nLT0      = "tri: n < 0"
	mLT0      = "tri: m < 0"
	badRow    = "tri: row index out of range"
	badLdA    = "tri: bad leading dimension of A"
	badLdSrc  = "tri: bad leading dimension of source"
	badLdDst  = "tri: bad leading dimension of destination"
	shortA    = "tri: insufficient length of A"
	shortTril = "tri: insufficient length of packed triangle"
	shortSrc  = "tri: insufficient length of source"
	shortDst  = "tri: insufficient length of destination"
)
