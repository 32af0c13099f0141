package refgenome

import "fmt"

// DefaultHalfWindow is the number of bases buffered on either side of a
// requested offset when no other size is configured.
const DefaultHalfWindow = 1000000

// refiller fetches the bases of the 0-based half-open range [start,end)
// on a named contig. Implemented by each genome backend.
type refiller interface {
	refill(name string, start, end int) ([]byte, error)
}

// Contig is random access to the bases of one named sequence. It keeps a
// single byte window over the contig and re-reads it from the backend when
// an offset lands outside the window, so nearby accesses cost one backend
// read between them. A Contig is not safe for concurrent use.
type Contig struct {
	rec        SequenceRecord
	fill       refiller
	halfWindow int

	// window holds the bases [windowStart, windowStart+len(window)).
	// It is nil until the first access.
	window      []byte
	windowStart int
}

func newContig(rec SequenceRecord, fill refiller, halfWindow int) *Contig {
	return &Contig{rec: rec, fill: fill, halfWindow: halfWindow}
}

// Name of the contig this Contig serves
func (c *Contig) Name() string { return c.rec.Name }

// Length of the contig in bases
func (c *Contig) Length() int { return c.rec.Length }

// Record returns the dictionary entry backing this Contig
func (c *Contig) Record() SequenceRecord { return c.rec }

// At returns the base at a 0-based offset. Offsets outside [0,Length())
// fail with an OutOfRangeError without touching the backend. A failed
// refill leaves the window empty; callers should discard the Contig after
// any error other than OutOfRangeError.
func (c *Contig) At(offset int) (byte, error) {
	if offset < 0 || offset >= c.rec.Length {
		return 0, &OutOfRangeError{Contig: c.rec.Name, Offset: offset, Length: c.rec.Length}
	}

	if c.window != nil && offset >= c.windowStart && offset-c.windowStart < len(c.window) {
		return c.window[offset-c.windowStart], nil
	}

	// center a new window on the offset, clipped to the contig's edges
	start := offset - c.halfWindow
	if start < 0 {
		start = 0
	}
	end := start + 2*c.halfWindow
	if end > c.rec.Length {
		end = c.rec.Length
	}

	window, err := c.fill.refill(c.rec.Name, start, end)
	if err != nil {
		c.window = nil
		return 0, err
	}
	if offset-start >= len(window) {
		c.window = nil
		return 0, fmt.Errorf("short refill on %s: %d bases for [%d,%d)", c.rec.Name, len(window), start, end)
	}

	c.window = window
	c.windowStart = start
	return c.window[offset-start], nil
}

// Subsequence returns the bases of the 0-based half-open range [start,end),
// reading through the window so large ranges still arrive in a bounded
// number of backend reads.
func (c *Contig) Subsequence(start, end int) ([]byte, error) {
	if start < 0 || start > end {
		return nil, &OutOfRangeError{Contig: c.rec.Name, Offset: start, Length: c.rec.Length}
	}
	if end > c.rec.Length {
		return nil, &OutOfRangeError{Contig: c.rec.Name, Offset: end, Length: c.rec.Length}
	}

	seq := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		b, err := c.At(i)
		if err != nil {
			return nil, err
		}
		seq = append(seq, b)
	}
	return seq, nil
}
