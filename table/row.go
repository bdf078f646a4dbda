package table

import (
	"strings"

	"github.com/go-sif/sifprep"
)

type row struct {
	schema sifprep.Schema
	values []string
}

// Schema returns the Schema of the Table this Row belongs to
func (r *row) Schema() sifprep.Schema {
	return r.schema
}

// Get returns the value of a column
func (r *row) Get(colName string) (string, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return "", err
	}
	return r.values[offset.Index()], nil
}

// Set replaces the value of a column
func (r *row) Set(colName string, value string) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	r.values[offset.Index()] = value
	return nil
}

// Values returns a copy of this Row's values, in Schema order
func (r *row) Values() []string {
	return append([]string(nil), r.values...)
}

// ToString returns a string representation of this Row
func (r *row) ToString() string {
	var res strings.Builder
	res.WriteString("{")
	for i, name := range r.schema.ColumnNames() {
		if i > 0 {
			res.WriteString(", ")
		}
		res.WriteString(name)
		res.WriteString(": ")
		res.WriteString(r.values[i])
	}
	res.WriteString("}")
	return res.String()
}
