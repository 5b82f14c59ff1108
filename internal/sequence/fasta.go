package sequence

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ParseFASTA reads every record of a FASTA stream. Each record's type is
// detected from its residues; records are not otherwise validated.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	// The template alphabet only tags the parsed records.
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var seqs []*Sequence
	for sc.Next() {
		rec, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected FASTA record type %T", sc.Seq())
		}

		residues := lettersToString(rec.Seq)
		seqs = append(seqs, &Sequence{
			Residues:    residues,
			ID:          rec.Name(),
			Description: rec.Description(),
			Type:        Detect(residues),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("parse FASTA: %w", err)
	}

	return seqs, nil
}

// ReadFASTA reads every record of the FASTA file at path.
func ReadFASTA(path string) ([]*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := ParseFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seqs, nil
}

func lettersToString(letters alphabet.Letters) string {
	b := make([]byte, len(letters))
	for i, l := range letters {
		b[i] = byte(l)
	}
	return string(b)
}
