package transform

import (
	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
)

// project rebuilds every row of t to match newSchema. Values are carried over
// by column name; columns absent from the Schema of t are populated with fill.
func project(t sifprep.Table, newSchema sifprep.Schema, fill string) (sifprep.Table, error) {
	oldSchema := t.GetSchema()
	names := newSchema.ColumnNames()
	sources := make([]int, len(names))
	for i, name := range names {
		sources[i] = -1
		if offset, err := oldSchema.GetOffset(name); err == nil {
			sources[i] = offset.Index()
		}
	}
	rows := make([][]string, t.NumRows())
	for r := range rows {
		old := t.GetRow(r).Values()
		next := make([]string, len(names))
		for i, src := range sources {
			if src < 0 {
				next[i] = fill
			} else {
				next[i] = old[src]
			}
		}
		rows[r] = next
	}
	return table.CreateTable(newSchema, rows)
}
