package transform

import (
	"fmt"

	"github.com/go-sif/sifprep"
)

// RemoveColumn removes existing columns
func RemoveColumn(oldNames ...string) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		newSchema := t.GetSchema().Clone()
		for _, oldName := range oldNames {
			var removed bool
			newSchema, removed = newSchema.RemoveColumn(oldName)
			if !removed {
				return nil, fmt.Errorf("Cannot remove column %s because it does not exist", oldName)
			}
		}
		return project(t, newSchema, "")
	}
}
