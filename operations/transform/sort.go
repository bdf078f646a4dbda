package transform

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-sif/sifprep"
)

// SortStableByInt orders the Rows of a Table by the integer values of a column, ascending.
// Rows with equal values retain their relative order.
func SortStableByInt(colName string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		values, err := t.Column(colName)
		if err != nil {
			return nil, err
		}
		keys := make([]int64, len(values))
		for i, v := range values {
			keys[i], err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Column %s of row %d could not be parsed as an integer: %w", colName, i, err)
			}
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return keys[order[a]] < keys[order[b]]
		})
		return Select(order)(t)
	}
}
