package refgenome

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/biogo/hts/fai"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// fastaGenome serves bases from a local FASTA file through its .fai index
type fastaGenome struct {
	path   string
	fh     *os.File
	file   *fai.File
	dict   *Dictionary
	half   int
	logger log.Logger
	last   lastContig
}

// OpenFasta opens an indexed FASTA file. A "<path>.fai" index must exist
// next to the file; without it there is no dictionary and no genome.
func OpenFasta(path string, opts ...Option) (Genome, error) {
	o := newOptions(opts)

	fh, err := os.Open(path + ".fai")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoIndex)
		}
		return nil, err
	}
	idx, err := fai.ReadFrom(fh)
	fh.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read index of %s: %v", path, err)
	}

	dict, err := dictFromIndex(idx)
	if err != nil {
		return nil, fmt.Errorf("bad index of %s: %v", path, err)
	}
	if dict.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDictionary)
	}

	fa, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}

	level.Debug(o.logger).Log("msg", "opened FASTA genome", "path", path, "contigs", dict.Len())
	return &fastaGenome{
		path:   path,
		fh:     fa,
		file:   fai.NewFile(fa, idx),
		dict:   dict,
		half:   o.halfWindow,
		logger: o.logger,
	}, nil
}

// dictFromIndex orders fai's records by their byte offset in the FASTA,
// recovering the on-disk contig order that the index map loses
func dictFromIndex(idx fai.Index) (*Dictionary, error) {
	recs := make([]fai.Record, 0, len(idx))
	for _, r := range idx {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Start < recs[j].Start })

	dict := NewDictionary()
	for _, r := range recs {
		if err := dict.Add(SequenceRecord{Name: r.Name, Length: r.Length}); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func (g *fastaGenome) Source() string { return g.path }

func (g *fastaGenome) Dictionary() *Dictionary { return g.dict }

func (g *fastaGenome) Contig(name string) (*Contig, bool) {
	return g.last.lookup(g.dict, g, g.half, name)
}

func (g *fastaGenome) Close() error {
	g.last.invalidate()
	if g.fh == nil {
		return nil
	}
	fh := g.fh
	g.fh = nil
	g.file = nil
	return fh.Close()
}

func (g *fastaGenome) refill(name string, start, end int) ([]byte, error) {
	if g.file == nil {
		return nil, ErrClosed
	}

	metricRefills.WithLabelValues("fasta").Inc()
	level.Debug(g.logger).Log("msg", "refill", "contig", name, "start", start, "end", end)

	seq, err := g.file.SeqRange(name, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s:%d-%d from %s: %v", name, start, end, g.path, err)
	}

	bases, err := io.ReadAll(seq)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s:%d-%d from %s: %v", name, start, end, g.path, err)
	}
	return bases, nil
}
