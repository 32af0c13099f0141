package refgenome

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// dasGenome serves bases from a DAS annotation server, eg
// http://genome.cse.ucsc.edu/cgi-bin/das/hg19. The dictionary comes from
// the server's entry-point listing; refills are one GET each against the
// /dna endpoint.
type dasGenome struct {
	base   string
	client *http.Client
	dict   *Dictionary
	half   int
	logger log.Logger
	last   lastContig
	closed bool
}

// OpenDas fetches the entry-point listing under base and returns a
// genome backed by the server
func OpenDas(base string, opts ...Option) (Genome, error) {
	o := newOptions(opts)

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	g := &dasGenome{
		base:   base,
		client: o.client,
		half:   o.halfWindow,
		logger: o.logger,
	}

	dict, err := g.fetchDictionary()
	if err != nil {
		return nil, err
	}
	if dict.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", base, ErrEmptyDictionary)
	}
	g.dict = dict

	level.Debug(o.logger).Log("msg", "opened DAS genome", "url", base, "contigs", dict.Len())
	return g, nil
}

// fetchDictionary reads {base}entry_points, one SEGMENT element per
// contig. The id attribute is the contig name and the stop attribute,
// 1-based and inclusive, doubles as its length.
func (g *dasGenome) fetchDictionary() (*Dictionary, error) {
	u := g.base + "entry_points"

	resp, err := g.client.Get(u)
	if err != nil {
		return nil, &UnavailableError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{URL: u, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	dict := NewDictionary()
	dec := xml.NewDecoder(resp.Body)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return dict, nil
		}
		if err != nil {
			return nil, &UnavailableError{URL: u, Err: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "SEGMENT" {
			continue
		}
		id, ok := attrValue(se, "id")
		if !ok {
			return nil, &MetadataError{URL: u, Reason: "cannot get @id of SEGMENT"}
		}
		stop, ok := attrValue(se, "stop")
		if !ok {
			return nil, &MetadataError{URL: u, Reason: "cannot get @stop of SEGMENT"}
		}
		length, err := strconv.Atoi(stop)
		if err != nil {
			return nil, &MetadataError{URL: u, Reason: fmt.Sprintf("bad @stop %q on SEGMENT %s", stop, id)}
		}
		if err := dict.Add(SequenceRecord{Name: id, Length: length}); err != nil {
			return nil, &MetadataError{URL: u, Reason: err.Error()}
		}
	}
}

func (g *dasGenome) Source() string { return g.base }

func (g *dasGenome) Dictionary() *Dictionary { return g.dict }

func (g *dasGenome) Contig(name string) (*Contig, bool) {
	if g.closed {
		return nil, false
	}
	return g.last.lookup(g.dict, g, g.half, name)
}

func (g *dasGenome) Close() error {
	g.last.invalidate()
	g.closed = true
	return nil
}

// refill issues {base}dna?segment={name},{start+1},{end} and collects the
// character data of the response's DNA element, dropping whitespace. The
// server speaks 1-based inclusive coordinates on the wire.
func (g *dasGenome) refill(name string, start, end int) ([]byte, error) {
	if g.closed {
		return nil, ErrClosed
	}

	u := fmt.Sprintf("%sdna?segment=%s,%d,%d", g.base, url.QueryEscape(name), start+1, end)

	metricRefills.WithLabelValues("das").Inc()
	level.Debug(g.logger).Log("msg", "refill", "contig", name, "start", start, "end", end, "url", u)

	resp, err := g.client.Get(u)
	if err != nil {
		return nil, &UnavailableError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{URL: u, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	dec := xml.NewDecoder(resp.Body)

	// scan for the opening DNA element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &ProtocolError{URL: u, Reason: "no <DNA> found"}
		}
		if err != nil {
			return nil, &UnavailableError{URL: u, Err: err}
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "DNA" {
			break
		}
	}

	// collect bases until the element closes
	bases := make([]byte, 0, end-start)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &ProtocolError{URL: u, Reason: "<DNA> not closed"}
		}
		if err != nil {
			return nil, &UnavailableError{URL: u, Err: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			for _, b := range t {
				if unicode.IsSpace(rune(b)) {
					continue
				}
				bases = append(bases, b)
			}
		case xml.EndElement:
			return bases, nil
		default:
			return nil, &ProtocolError{URL: u, Reason: fmt.Sprintf("illegal %T inside <DNA>", tok)}
		}
	}
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
