package refgenome

import "fmt"

// SequenceRecord is one contig entry in a Dictionary
type SequenceRecord struct {
	// Name of the contig, eg "chr1"
	Name string

	// Length of the contig in bases
	Length int
}

// Dictionary is the ordered list of contigs in a genome. It is built once
// when a genome is opened and never changes afterward.
type Dictionary struct {
	records []SequenceRecord
	index   map[string]int
}

// NewDictionary returns an empty Dictionary
func NewDictionary() *Dictionary {
	return &Dictionary{index: map[string]int{}}
}

// Add appends a record. Contig names must be unique within a genome.
func (d *Dictionary) Add(rec SequenceRecord) error {
	if _, dup := d.index[rec.Name]; dup {
		return fmt.Errorf("duplicate contig %q in dictionary", rec.Name)
	}
	d.index[rec.Name] = len(d.records)
	d.records = append(d.records, rec)
	return nil
}

// Get returns the record for a contig name
func (d *Dictionary) Get(name string) (SequenceRecord, bool) {
	i, ok := d.index[name]
	if !ok {
		return SequenceRecord{}, false
	}
	return d.records[i], true
}

// Len is the number of contigs in the dictionary
func (d *Dictionary) Len() int {
	return len(d.records)
}

// Records returns the contigs in genome order
func (d *Dictionary) Records() []SequenceRecord {
	return d.records
}
