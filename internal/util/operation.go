package util

import (
	"fmt"

	"github.com/go-sif/sifprep"
)

// SafeMapOperation wraps a MapOperation such that panics are recovered and nice error messages are constructed
func SafeMapOperation(mapOp sifprep.MapOperation) (safeMapOp sifprep.MapOperation) {
	return func(rowNum int, row sifprep.Row) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Map Panic: %w\nRow %d: %s\n%s", anErr, rowNum, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Map Panic: %v\nRow %d: %s\n%s", r, rowNum, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Map Error: %w\nRow %d: %s", err, rowNum, row.ToString())
			}
		}()
		err = mapOp(rowNum, row)
		return
	}
}
