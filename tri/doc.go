// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tri provides layout transforms between full square storage and
// packed lower-triangular storage of symmetric, antisymmetric, Hermitian
// and anti-Hermitian matrices.
//
// All matrices are stored in row-major order in flat slices with an
// explicit leading dimension. A packed triangle holds the n(n+1)/2 lower
// triangle elements of an n×n matrix in row-major order, row i
// contributing i+1 elements, so the element at packed index i*(i+1)/2+j
// corresponds to the matrix element at (i, j) for j ≤ i.
//
// The routines perform only layout and index transforms. They never
// allocate, hold no state, and are safe to call concurrently on disjoint
// buffers. Preconditions on dimensions and slice lengths are checked at
// entry and violations panic.
package tri
