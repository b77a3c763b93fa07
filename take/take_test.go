// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package take

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

func TestDgather(t *testing.T) {
	for ti, test := range []struct {
		src      []float64
		idim     int
		idx, idy []int
		odim     int
		want     []float64
	}{
		{
			src: []float64{
				1, 2,
				3, 4,
			},
			idim: 2,
			idx:  []int{1, 0},
			idy:  []int{1, 0},
			odim: 2,
			want: []float64{
				4, 3,
				2, 1,
			},
		},
		{
			// Repeated row index: both output rows read row 0.
			src: []float64{
				1, 2,
				3, 4,
			},
			idim: 2,
			idx:  []int{0, 0},
			idy:  []int{1},
			odim: 1,
			want: []float64{
				2,
				2,
			},
		},
		{
			// Destination stride wider than the block; the padding
			// column keeps its previous contents.
			src: []float64{
				1, 2, 3,
				4, 5, 6,
			},
			idim: 3,
			idx:  []int{1},
			idy:  []int{0, 2},
			odim: 3,
			want: []float64{
				4, 6, 0,
			},
		},
	} {
		dst := make([]float64, len(test.want))
		Dgather(dst, test.odim, test.src, test.idim, test.idx, test.idy)
		if !floats.Equal(test.want, dst) {
			t.Errorf("Case %v: unexpected gather;\ngot  %v\nwant %v", ti, dst, test.want)
		}

		// Gather accumulates, so a second call doubles the block.
		Dgather(dst, test.odim, test.src, test.idim, test.idx, test.idy)
		for i := range test.idx {
			for j := range test.idy {
				if dst[i*test.odim+j] != 2*test.want[i*test.odim+j] {
					t.Errorf("Case %v: gather does not accumulate at (%v,%v)", ti, i, j)
				}
			}
		}
	}
}

func TestDscatter(t *testing.T) {
	// Repeated indices accumulate into the same destination element.
	src := []float64{
		2,
		2,
	}
	dst := make([]float64, 4)
	Dscatter(dst, 2, src, 1, []int{0, 0}, []int{1})
	want := []float64{
		0, 4,
		0, 0,
	}
	if !floats.Equal(want, dst) {
		t.Errorf("unexpected scatter;\ngot  %v\nwant %v", dst, want)
	}
}

func TestDgatherScatterRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dim := range []int{1, 2, 3, 5, 10} {
		for _, nx := range []int{0, 1, dim / 2, dim} {
			for _, ny := range []int{0, 1, dim / 2, dim} {
				name := fmt.Sprintf("dim=%v,nx=%v,ny=%v", dim, nx, ny)

				src := make([]float64, dim*dim)
				for i := range src {
					src[i] = rnd.NormFloat64()
				}
				// Unique index lists so that scatter(gather(src))
				// restores src at the selected positions.
				idx := rnd.Perm(dim)[:nx]
				idy := rnd.Perm(dim)[:ny]

				odim := max(1, ny)
				block := make([]float64, max(1, nx)*odim)
				Dgather(block, odim, src, dim, idx, idy)

				got := make([]float64, dim*dim)
				Dscatter(got, dim, block, odim, idx, idy)

				want := make([]float64, dim*dim)
				for _, ix := range idx {
					for _, iy := range idy {
						want[ix*dim+iy] = src[ix*dim+iy]
					}
				}
				if !floats.Equal(want, got) {
					t.Errorf("%v: scatter does not invert gather;\ngot  %v\nwant %v", name, got, want)
				}
			}
		}
	}
}

func TestZgatherScatterRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dim := range []int{1, 2, 3, 5, 10} {
		src := make([]complex128, dim*dim)
		for i := range src {
			src[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
		}
		nx := (dim + 1) / 2
		ny := dim
		idx := rnd.Perm(dim)[:nx]
		idy := rnd.Perm(dim)[:ny]

		odim := max(1, ny)
		block := make([]complex128, max(1, nx)*odim)
		Zgather(block, odim, src, dim, idx, idy)

		got := make([]complex128, dim*dim)
		Zscatter(got, dim, block, odim, idx, idy)

		want := make([]complex128, dim*dim)
		for _, ix := range idx {
			for _, iy := range idy {
				want[ix*dim+iy] = src[ix*dim+iy]
			}
		}
		if !cmplxs.Equal(want, got) {
			t.Errorf("dim=%v: scatter does not invert gather", dim)
		}
	}
}
