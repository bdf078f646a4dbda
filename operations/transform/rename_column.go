package transform

import (
	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
)

// RenameColumn renames an existing column, retaining its position
func RenameColumn(oldName string, newName string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		newSchema, err := t.GetSchema().Clone().RenameColumn(oldName, newName)
		if err != nil {
			return nil, err
		}
		return table.CreateTable(newSchema, t.Records())
	}
}
