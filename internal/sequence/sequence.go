// Package sequence provides nucleotide and protein sequence types with
// validation and FASTA input.
//
// Residues are stored exactly as given; letter case is preserved so that
// aligned output reproduces the input.
package sequence

import (
	"fmt"
	"strings"
)

// Type represents the type of biological sequence.
type Type int

const (
	// Unknown represents a sequence whose alphabet could not be determined
	Unknown Type = iota
	// DNA represents a DNA sequence (A, C, G, T, N)
	DNA
	// RNA represents an RNA sequence (A, C, G, U, N)
	RNA
	// Protein represents an amino acid sequence
	Protein
)

func (t Type) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "Protein"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the type as its name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name, ignoring case.
func (t *Type) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "dna":
		*t = DNA
	case "rna":
		*t = RNA
	case "protein":
		*t = Protein
	case "unknown", "":
		*t = Unknown
	default:
		return fmt.Errorf("unknown sequence type %q", text)
	}
	return nil
}

// IsNucleotide reports whether t is DNA or RNA.
func (t Type) IsNucleotide() bool {
	return t == DNA || t == RNA
}

// Detect infers the sequence type from its residues. Nucleotide alphabets
// are tried before the protein alphabet, so "ACGT" is DNA even though every
// symbol is also an amino acid code.
func Detect(residues string) Type {
	if len(residues) == 0 {
		return Unknown
	}
	for _, t := range []Type{DNA, RNA, Protein} {
		if _, ok := symbolsFor(t).contains(residues); ok {
			return t
		}
	}
	return Unknown
}

// Sequence represents a validated biological sequence.
type Sequence struct {
	Residues    string
	ID          string
	Description string
	Type        Type
}

// New creates a sequence, detecting its type. Residues outside every known
// alphabet are rejected.
func New(residues string) (*Sequence, error) {
	if len(residues) == 0 {
		return nil, &EmptySequenceError{}
	}

	t := Detect(residues)
	if t == Unknown {
		// Report against the widest alphabet.
		if err := ValidateProtein(residues); err != nil {
			return nil, err
		}
	}

	return &Sequence{Residues: residues, Type: t}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(residues, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(residues)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a sequence of an explicit type with full metadata.
func WithMetadata(residues, id, description string, t Type) (*Sequence, error) {
	if err := Validate(residues, t); err != nil {
		return nil, err
	}

	return &Sequence{
		Residues:    residues,
		ID:          id,
		Description: description,
		Type:        t,
	}, nil
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// IsValid checks if all residues are valid for the sequence type.
func (s *Sequence) IsValid() bool {
	return Validate(s.Residues, s.Type) == nil
}

// Subsequence returns residues [start, end) of the sequence.
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end <= start {
		return nil, fmt.Errorf("end must be greater than start")
	}
	if end > len(s.Residues) {
		return nil, fmt.Errorf("end must not exceed sequence length")
	}

	sub := *s
	sub.Residues = s.Residues[start:end]
	return &sub, nil
}

// Reverse returns the reverse of the sequence.
func (s *Sequence) Reverse() *Sequence {
	b := []byte(s.Residues)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	rev := *s
	rev.Residues = string(b)
	return &rev
}

func complementBase(c byte) byte {
	switch c {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 'n':
		return 'n'
	default:
		return 'N'
	}
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	if s.Type != DNA {
		return nil, fmt.Errorf("reverse complement only available for DNA sequences, got %s", s.Type)
	}

	n := len(s.Residues)
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[n-1-i] = complementBase(s.Residues[i])
	}

	rc := *s
	rc.Residues = string(b)
	return &rc, nil
}

// GCContent calculates the proportion of G and C residues of a nucleotide
// sequence.
func (s *Sequence) GCContent() (float64, error) {
	if !s.Type.IsNucleotide() {
		return 0, fmt.Errorf("GC content only available for nucleotide sequences, got %s", s.Type)
	}
	if len(s.Residues) == 0 {
		return 0, nil
	}

	gc := 0
	for i := 0; i < len(s.Residues); i++ {
		switch s.Residues[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(s.Residues)), nil
}

// Composition returns the count of each residue, folded to uppercase.
func (s *Sequence) Composition() map[string]int {
	counts := make(map[string]int)
	for i := 0; i < len(s.Residues); i++ {
		c := s.Residues[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		counts[string(c)]++
	}
	return counts
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	header := ">sequence"
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	// 80 residues per line
	for i := 0; i < len(s.Residues); i += 80 {
		end := min(i+80, len(s.Residues))
		sb.WriteString(s.Residues[i:end])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
	}
	return s.Residues
}

// Equal checks equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Residues == other.Residues && s.Type == other.Type
}
