package codeplug

import "fmt"

// Kind enumerates the codec's error categories (spec.md §7).
type Kind int

const (
	// CapacityExceeded: the config has more records of some type than the
	// radio can hold, or a name/list is longer than its declared width.
	CapacityExceeded Kind = iota
	// InvalidFrequency: a frequency is out of the representable BCD range.
	InvalidFrequency
	// InvalidIndex: a cross-reference points at an object not in the config.
	InvalidIndex
	// CorruptImage: a decode read hit an unallocated byte, a presence bit
	// was set over an obviously-invalid record, or two masks disagreed.
	CorruptImage
	// Unsupported: a decoded field value falls outside its known enum.
	Unsupported
)

var kindNames = map[Kind]string{
	CapacityExceeded:  "CapacityExceeded",
	InvalidFrequency:  "InvalidFrequency",
	InvalidIndex:      "InvalidIndex",
	CorruptImage:      "CorruptImage",
	Unsupported:       "Unsupported",
}

// String implements fmt.Stringer, following the teacher's map-lookup enum
// stringer convention (pkg/registers.RadioState.String()).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Diagnostic is one user-visible issue encountered during encode or decode
// (spec.md §7): what kind of problem, which record type and index, its
// binary address if known, and a human-readable message.
type Diagnostic struct {
	Kind       Kind
	RecordType string
	Index      int
	Address    uint32
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s[%d] @0x%06X: %s", d.Kind, d.RecordType, d.Index, d.Address, d.Message)
}

// Error wraps a single fatal diagnostic (spec.md §7: encode-time errors are
// always fatal, never accumulated).
type Error struct {
	Diagnostic Diagnostic
}

func (e *Error) Error() string {
	return e.Diagnostic.String()
}

// NewError constructs a fatal *Error for the given diagnostic fields.
func NewError(kind Kind, recordType string, index int, address uint32, message string) *Error {
	return &Error{Diagnostic: Diagnostic{Kind: kind, RecordType: recordType, Index: index, Address: address, Message: message}}
}
