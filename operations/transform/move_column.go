package transform

import "github.com/go-sif/sifprep"

// MoveColumn moves an existing column to position pos. All other columns retain their relative order.
func MoveColumn(colName string, pos int) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		newSchema, err := t.GetSchema().Clone().MoveColumn(colName, pos)
		if err != nil {
			return nil, err
		}
		return project(t, newSchema, "")
	}
}

// MoveColumnToFront makes an existing column the first column of the Table
func MoveColumnToFront(colName string) sifprep.TableOperation {
	return MoveColumn(colName, 0)
}
