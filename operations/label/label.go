// Package label locates the label column of a Table.
package label

import (
	"github.com/go-sif/sifprep"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/operations/transform"
)

// defaultCandidates is scanned in order; the first name present in a Table wins
var defaultCandidates = []string{
	"label",
	"labels",
	"class",
	"classes",
	"Label",
	"Labels",
	"Class",
	"Classes",
	"species",
	"Species",
}

// DefaultCandidates returns the recognized label column names, in priority order
func DefaultCandidates() []string {
	return append([]string(nil), defaultCandidates...)
}

// Find returns the first candidate (in candidate order, not column order) which is a
// column of the Schema. Names are case-sensitive.
func Find(s sifprep.Schema, candidates []string) (string, error) {
	for _, name := range candidates {
		if s.HasColumn(name) {
			return name, nil
		}
	}
	return "", errors.LabelNotFoundError{Candidates: append([]string(nil), candidates...)}
}

// Locate finds the label column of a Table and returns a copy of the Table in which
// that column comes first. All other columns retain their relative order.
func Locate(t sifprep.Table, candidates []string) (sifprep.Table, string, error) {
	name, err := Find(t.GetSchema(), candidates)
	if err != nil {
		return nil, "", err
	}
	next, err := t.To(transform.MoveColumnToFront(name))
	if err != nil {
		return nil, "", err
	}
	return next, name, nil
}

// ToFront is a TableOperation form of Locate, which also reports the located column name through found
func ToFront(candidates []string, found *string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		next, name, err := Locate(t, candidates)
		if err != nil {
			return nil, err
		}
		if found != nil {
			*found = name
		}
		return next, nil
	}
}
