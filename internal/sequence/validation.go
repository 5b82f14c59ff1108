package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one residue"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidResidueError is returned when a residue is not part of the
// alphabet of the sequence type.
type InvalidResidueError struct {
	Position int
	Found    byte
	Type     Type
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid %s residue %q at position %d", e.Type, e.Found, e.Position)
}

func (e *InvalidResidueError) IsSequenceError() {}

// symbolSet is a case-insensitive byte set.
type symbolSet [256]bool

func newSymbolSet(symbols string) *symbolSet {
	var a symbolSet
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		a[c] = true
		if 'A' <= c && c <= 'Z' {
			a[c+('a'-'A')] = true
		}
	}
	return &a
}

func (a *symbolSet) contains(residues string) (int, bool) {
	for i := 0; i < len(residues); i++ {
		if !a[residues[i]] {
			return i, false
		}
	}
	return -1, true
}

var (
	dnaAlphabet     = newSymbolSet("ACGTN")
	rnaAlphabet     = newSymbolSet("ACGUN")
	proteinAlphabet = newSymbolSet("ARNDCQEGHILKMFPSTWYVBZX*")
)

func symbolsFor(t Type) *symbolSet {
	switch t {
	case DNA:
		return dnaAlphabet
	case RNA:
		return rnaAlphabet
	case Protein:
		return proteinAlphabet
	default:
		return nil
	}
}

// Validate checks that residues is non-empty and only uses symbols of the
// given type. Unknown sequences accept any residue.
func Validate(residues string, t Type) error {
	if len(residues) == 0 {
		return &EmptySequenceError{}
	}

	a := symbolsFor(t)
	if a == nil {
		return nil
	}
	if pos, ok := a.contains(residues); !ok {
		return &InvalidResidueError{Position: pos, Found: residues[pos], Type: t}
	}
	return nil
}

// ValidateDNA validates that a string contains only valid DNA bases.
func ValidateDNA(residues string) error {
	return Validate(residues, DNA)
}

// ValidateProtein validates that a string contains only amino acid codes.
func ValidateProtein(residues string) error {
	return Validate(residues, Protein)
}
