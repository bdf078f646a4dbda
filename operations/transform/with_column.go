package transform

import (
	"github.com/go-sif/sifprep"
)

// AddColumn declares that a new column with a specific name should be
// appended to the Table, with every Row holding the value fill
func AddColumn(colName string, fill string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		return InsertColumn(colName, t.GetSchema().NumColumns(), fill)(t)
	}
}

// InsertColumn declares that a new column with a specific name should be
// inserted at position pos, with every Row holding the value fill.
// Columns at or after pos are shifted one place to the right.
func InsertColumn(colName string, pos int, fill string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		newSchema, err := t.GetSchema().Clone().InsertColumn(colName, pos)
		if err != nil {
			return nil, err
		}
		return project(t, newSchema, fill)
	}
}
