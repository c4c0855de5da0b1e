// Package parallel splits a pixel buffer into horizontal bands and paints
// them concurrently on a work-stealing worker pool.
//
// Bands cover disjoint row ranges, so tasks that only write pixels in their
// own rows need no locking.
package parallel

// MinBandRows is the smallest band height Split produces when the buffer is
// tall enough. Thin bands cost more in scheduling than they return.
const MinBandRows = 16

// Band is a half-open range of buffer rows [Y0, Y1).
type Band struct {
	Index int
	Y0    int
	Y1    int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Split divides height rows into at most n bands of near-equal size. The
// first height%count bands get one extra row. Bands are never thinner than
// MinBandRows unless the whole buffer is. A non-positive height yields nil.
func Split(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	count := max(n, 1)
	if limit := max(height/MinBandRows, 1); count > limit {
		count = limit
	}

	bands := make([]Band, count)
	rows, extra := height/count, height%count
	y := 0
	for i := range bands {
		h := rows
		if i < extra {
			h++
		}
		bands[i] = Band{Index: i, Y0: y, Y1: y + h}
		y += h
	}
	return bands
}

// Share distributes total items over bands in proportion to their rows.
// Rounding remainders go to the first bands so the shares sum to total.
func Share(bands []Band, total int) []int {
	shares := make([]int, len(bands))
	if len(bands) == 0 || total <= 0 {
		return shares
	}

	rows := 0
	for _, b := range bands {
		rows += b.Rows()
	}
	assigned := 0
	for i, b := range bands {
		shares[i] = total * b.Rows() / rows
		assigned += shares[i]
	}
	for i := 0; assigned < total; i = (i + 1) % len(shares) {
		shares[i]++
		assigned++
	}
	return shares
}
