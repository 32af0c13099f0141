// Package refgenome is uniform random access to the contigs of a
// reference genome, backed either by a local indexed FASTA file or by a
// remote DAS annotation server. Callers address bases by contig name and
// offset as if the genome were in memory; each contig keeps one buffered
// window over its sequence and each genome remembers the last contig it
// resolved, the common pattern for positional queries.
package refgenome

import (
	"net/http"
	"strings"

	"github.com/go-kit/log"
)

// Genome is an open reference genome. A Genome and the Contigs it hands
// out share mutable state and are not safe for concurrent use without
// external synchronization.
type Genome interface {
	// Source is the path or URL the genome was opened from
	Source() string

	// Dictionary lists the genome's contigs in order
	Dictionary() *Dictionary

	// Contig resolves a contig by name. The second return is false when
	// the dictionary has no such contig; this is not an error. Calling
	// Contig twice with the same name returns the same instance.
	Contig(name string) (*Contig, bool)

	// Close releases the genome's backend resources. It is idempotent;
	// no other method may be called after it.
	Close() error
}

// Option configures a genome as it is opened
type Option func(*options)

type options struct {
	halfWindow int
	logger     log.Logger
	client     *http.Client
}

func newOptions(opts []Option) options {
	o := options{
		halfWindow: DefaultHalfWindow,
		logger:     log.NewNopLogger(),
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHalfWindow sets the number of bases buffered on either side of a
// requested offset. Every contig's window is up to twice this size.
func WithHalfWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.halfWindow = n
		}
	}
}

// WithLogger sets the logger used for refill and bootstrap debug lines
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHTTPClient sets the client used for DAS requests. Any timeout
// policy belongs to this client; the genome itself never times out.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// Open opens a genome from a local FASTA path or, when the source starts
// with http:// or https://, from a DAS server
func Open(source string, opts ...Option) (Genome, error) {
	if IsURL(source) {
		return OpenDas(source, opts...)
	}
	return OpenFasta(source, opts...)
}

// IsURL reports whether a genome source names a remote server rather
// than a local file
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// lastContig is the single-entry contig cache shared by both genome
// variants. Keeping just the most recent contig is deliberate: callers
// overwhelmingly scan one contig at a time, so anything larger buys
// nothing and holds windows alive.
type lastContig struct {
	contig *Contig
}

func (lc *lastContig) lookup(dict *Dictionary, fill refiller, halfWindow int, name string) (*Contig, bool) {
	if lc.contig != nil && lc.contig.Name() == name {
		metricCacheHits.Inc()
		return lc.contig, true
	}
	lc.contig = nil
	rec, ok := dict.Get(name)
	if !ok {
		return nil, false
	}
	metricCacheMisses.Inc()
	lc.contig = newContig(rec, fill, halfWindow)
	return lc.contig, true
}

func (lc *lastContig) invalidate() {
	lc.contig = nil
}
