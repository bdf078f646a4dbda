package transform

import (
	"math/rand/v2"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
)

// Shuffle produces a uniformly random permutation of the Rows of a Table, drawn from rng.
// The same rng state always produces the same permutation.
func Shuffle(rng *rand.Rand) sifprep.TableOperation {
	return func(t sifprep.Table) (sifprep.Table, error) {
		records := t.Records()
		rng.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})
		return table.CreateTable(t.GetSchema().Clone(), records)
	}
}
