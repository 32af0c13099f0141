package refgenome

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRefiller serves refills out of an in-memory sequence and
// counts how often the backend was hit
type countingRefiller struct {
	seq   []byte
	calls int
	err   error
}

func (r *countingRefiller) refill(name string, start, end int) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	// a backend can hold less sequence than the dictionary claims; hand
	// back whatever exists, like a DAS server that ignores the range
	if end > len(r.seq) {
		end = len(r.seq)
	}
	if start > end {
		start = end
	}
	return r.seq[start:end], nil
}

// makeSeq builds a deterministic sequence of the given length
func makeSeq(length int) []byte {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = "ACGT"[i%4]
	}
	return seq
}

func TestContig_At_windowing(t *testing.T) {
	fill := &countingRefiller{seq: makeSeq(500000)}
	c := newContig(SequenceRecord{Name: "chr1", Length: 500000}, fill, 100)

	// first access at the contig start: the window cannot extend left,
	// so it covers [0,200)
	b, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), b)
	assert.Equal(t, 1, fill.calls)
	assert.Equal(t, 0, c.windowStart)
	assert.Len(t, c.window, 200)

	// accesses inside the window are free
	for i := 1; i < 200; i++ {
		b, err := c.At(i)
		require.NoError(t, err)
		assert.Equal(t, fill.seq[i], b)
	}
	assert.Equal(t, 1, fill.calls)

	// leaving the window recenters it on the offset: [150,350)
	b, err = c.At(250)
	require.NoError(t, err)
	assert.Equal(t, fill.seq[250], b)
	assert.Equal(t, 2, fill.calls)
	assert.Equal(t, 150, c.windowStart)
	assert.Len(t, c.window, 200)

	// the last base clips the window to the contig end: it starts at
	// 499999-100 and runs to the end, [499899,500000)
	b, err = c.At(499999)
	require.NoError(t, err)
	assert.Equal(t, fill.seq[499999], b)
	assert.Equal(t, 3, fill.calls)
	assert.Equal(t, 499899, c.windowStart)
	assert.Len(t, c.window, 101)
}

func TestContig_At_outOfRange(t *testing.T) {
	fill := &countingRefiller{seq: makeSeq(100)}
	c := newContig(SequenceRecord{Name: "chr1", Length: 100}, fill, 10)

	for _, offset := range []int{-1, 100, 5000} {
		_, err := c.At(offset)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor, "offset %d", offset)
		assert.Equal(t, offset, oor.Offset)
		assert.Equal(t, 100, oor.Length)
		assert.Equal(t, "chr1", oor.Contig)
	}

	// bounds failures never reach the backend
	assert.Equal(t, 0, fill.calls)
}

func TestContig_At_deterministic(t *testing.T) {
	seq := makeSeq(1000)

	// the same offsets in any order, across any window history, return
	// the same bases
	orders := [][]int{
		{0, 999, 500, 1, 998},
		{999, 0, 998, 1, 500},
		{500, 500, 0, 0, 999},
	}
	for _, order := range orders {
		fill := &countingRefiller{seq: seq}
		c := newContig(SequenceRecord{Name: "chr1", Length: 1000}, fill, 7)

		for _, offset := range order {
			b, err := c.At(offset)
			require.NoError(t, err)
			assert.Equal(t, seq[offset], b, "offset %d", offset)
		}
	}
}

func TestContig_At_scanRefillCount(t *testing.T) {
	fill := &countingRefiller{seq: makeSeq(1000)}
	c := newContig(SequenceRecord{Name: "chr1", Length: 1000}, fill, 100)

	for i := 0; i < 1000; i++ {
		_, err := c.At(i)
		require.NoError(t, err)
	}

	// after the first window a forward scan advances only half a window
	// per refill, since each new window is centered on the offset that
	// missed: 1 + ceil((1000-200)/100) backend reads
	assert.LessOrEqual(t, fill.calls, 9)
}

func TestContig_At_refillError(t *testing.T) {
	fill := &countingRefiller{seq: makeSeq(100), err: errors.New("disk on fire")}
	c := newContig(SequenceRecord{Name: "chr1", Length: 100}, fill, 10)

	_, err := c.At(50)
	require.Error(t, err)
	assert.Nil(t, c.window)

	// the error is not sticky at this layer: a later access retries
	fill.err = nil
	b, err := c.At(50)
	require.NoError(t, err)
	assert.Equal(t, fill.seq[50], b)
}

func TestContig_At_shortRefill(t *testing.T) {
	fill := &countingRefiller{seq: makeSeq(100)}
	c := newContig(SequenceRecord{Name: "chr1", Length: 200}, fill, 10)

	// backend claims 200 bases but can only produce 100: the access
	// past the real data must fail instead of serving garbage
	_, err := c.At(150)
	require.Error(t, err)
	assert.Nil(t, c.window)

	// a short window that still covers the offset is kept
	b, err := c.At(95)
	require.NoError(t, err)
	assert.Equal(t, fill.seq[95], b)
	assert.Equal(t, 85, c.windowStart)
	assert.Len(t, c.window, 15)
}

func TestContig_Subsequence(t *testing.T) {
	seq := makeSeq(1000)
	fill := &countingRefiller{seq: seq}
	c := newContig(SequenceRecord{Name: "chr1", Length: 1000}, fill, 50)

	tests := []struct {
		name       string
		start, end int
	}{
		{"within one window", 10, 60},
		{"across windows", 80, 400},
		{"whole contig", 0, 1000},
		{"empty", 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Subsequence(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, seq[tt.start:tt.end], got)
		})
	}

	for _, span := range [][2]int{{-1, 10}, {10, 5}, {900, 1001}} {
		_, err := c.Subsequence(span[0], span[1])

		var oor *OutOfRangeError
		assert.ErrorAs(t, err, &oor, fmt.Sprintf("span %v", span))
	}
}
