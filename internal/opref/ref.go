package opref

import (
	"fmt"
	"regexp"
	"strconv"
)

// refRegex matches `name` or `name[index]`.
var refRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.-]*)(?:\[(\d+)\])?$`)

// Ref points at an op, and optionally at one of its specializations.
type Ref struct {
	Op    string
	Index int // -1 indicates no index is present.
}

// New returns a reference to a whole op.
func New(op string) Ref {
	return Ref{Op: op, Index: -1}
}

// NewWithIndex returns a reference to one specialization of an op.
func NewWithIndex(op string, index int) Ref {
	return Ref{Op: op, Index: index}
}

// HasIndex reports whether the reference selects a single specialization.
func (r Ref) HasIndex() bool {
	return r.Index != -1
}

// String serializes the reference into its canonical form.
func (r Ref) String() string {
	if !r.HasIndex() {
		return r.Op
	}
	return fmt.Sprintf("%s[%d]", r.Op, r.Index)
}

// Parse creates a Ref from its canonical string representation.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("op reference cannot be empty")
	}

	matches := refRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Ref{}, fmt.Errorf("invalid op reference format: %q", raw)
	}

	ref := New(matches[1])
	if matches[2] != "" {
		index, err := strconv.Atoi(matches[2])
		if err != nil {
			return Ref{}, fmt.Errorf("invalid specialization index in %q: %w", raw, err)
		}
		ref.Index = index
	}
	return ref, nil
}
