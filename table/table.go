// Package table provides the in-memory implementation of sifprep.Table.
package table

import (
	"github.com/go-sif/sifprep"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/schema"
	"github.com/hashicorp/go-multierror"
)

type table struct {
	schema sifprep.Schema
	rows   [][]string
}

// CreateTable is a factory for Tables. The Table takes ownership of rows,
// each of which must have exactly one value per column of the Schema.
// Every incompatible row is reported, combined into a single error.
func CreateTable(s sifprep.Schema, rows [][]string) (sifprep.Table, error) {
	var merr *multierror.Error
	for i, r := range rows {
		if len(r) != s.NumColumns() {
			merr = multierror.Append(merr, errors.IncompatibleRowError{Row: i + 1, Width: len(r), Expected: s.NumColumns()})
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = [][]string{}
	}
	return &table{schema: s, rows: rows}, nil
}

// FromRecords builds a Table from a header and its data records
func FromRecords(header []string, records [][]string) (sifprep.Table, error) {
	s, err := schema.FromColumnNames(header)
	if err != nil {
		return nil, errors.InvalidArgumentError{Name: "<data_set>", Value: "header", Reason: err.Error()}
	}
	return CreateTable(s, copyRecords(records))
}

// GetSchema returns the Schema of this Table
func (t *table) GetSchema() sifprep.Schema {
	return t.schema
}

// NumRows returns the number of data rows in this Table
func (t *table) NumRows() int {
	return len(t.rows)
}

// GetRow retrieves a specific Row from this Table
func (t *table) GetRow(rowNum int) sifprep.Row {
	return &row{schema: t.schema, values: t.rows[rowNum]}
}

// ForEachRow iterates over the Rows of this Table, in order
func (t *table) ForEachRow(fn sifprep.MapOperation) error {
	for i := range t.rows {
		if err := fn(i, t.GetRow(i)); err != nil {
			return err
		}
	}
	return nil
}

// Column returns a copy of every value in a column, in row order
func (t *table) Column(colName string) ([]string, error) {
	offset, err := t.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.rows))
	for i, r := range t.rows {
		values[i] = r[offset.Index()]
	}
	return values, nil
}

// Records returns a copy of every Row's values, in row order
func (t *table) Records() [][]string {
	return copyRecords(t.rows)
}

// To applies a sequence of TableOperations, returning the final Table
func (t *table) To(ops ...sifprep.TableOperation) (sifprep.Table, error) {
	var next sifprep.Table = t
	for _, op := range ops {
		var err error
		next, err = op(next)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

func copyRecords(records [][]string) [][]string {
	result := make([][]string, len(records))
	for i, r := range records {
		result[i] = append([]string(nil), r...)
	}
	return result
}
