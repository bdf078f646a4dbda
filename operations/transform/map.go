package transform

import (
	"github.com/go-sif/sifprep"
	iutil "github.com/go-sif/sifprep/internal/util"
	"github.com/go-sif/sifprep/table"
)

// Map transforms every Row of a copy of the Table in-place, in row order
func Map(fn sifprep.MapOperation) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		next, err := table.CreateTable(t.GetSchema().Clone(), t.Records())
		if err != nil {
			return nil, err
		}
		if err = next.ForEachRow(iutil.SafeMapOperation(fn)); err != nil {
			return nil, err
		}
		return next, nil
	}
}
