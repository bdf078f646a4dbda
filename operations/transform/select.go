package transform

import (
	"fmt"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
)

// Select produces a Table containing copies of the Rows at the given positions, in the given order
func Select(rowNums []int) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		rows := make([][]string, len(rowNums))
		for i, rowNum := range rowNums {
			if rowNum < 0 || rowNum >= t.NumRows() {
				return nil, fmt.Errorf("Cannot select row %d from a Table with %d rows", rowNum, t.NumRows())
			}
			rows[i] = t.GetRow(rowNum).Values()
		}
		return table.CreateTable(t.GetSchema().Clone(), rows)
	}
}
