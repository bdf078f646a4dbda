// Package group assigns the rows of a Table to pseudo-replicate "gene" groups.
//
// Rows are shuffled, given a cyclic group index (position modulo the number of
// groups) and then stably sorted by that index. This produces groups of
// near-equal size whose members were, with high probability, not adjacent in
// the source Table. The three steps must run in exactly this order.
package group

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/go-sif/sifprep"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/operations/label"
	"github.com/go-sif/sifprep/operations/transform"
)

// ValidateNumGenes checks that numGenes lies within [sifprep.MinGenes, numRows]
func ValidateNumGenes(numGenes int, numRows int) error {
	if numGenes < sifprep.MinGenes || numGenes > numRows {
		return errors.InvalidArgumentError{
			Name:   "<number_of_genes>",
			Value:  strconv.Itoa(numGenes),
			Reason: "Number of genes must be between 2 and the number of data points in the file (" + strconv.Itoa(numRows) + ")",
		}
	}
	return nil
}

// Assign locates the label column of t using candidates, then groups its rows
// into numGenes groups using rng. The result has sifprep.GeneColumn as its first
// column and the label column second.
func Assign(t sifprep.Table, candidates []string, numGenes int, rng *rand.Rand) (sifprep.Table, error) {
	if t.NumRows() == 0 {
		return nil, errors.EmptyInputError{}
	}
	if err := ValidateNumGenes(numGenes, t.NumRows()); err != nil {
		return nil, err
	}
	return t.To(
		label.ToFront(candidates, nil),
		transform.Shuffle(rng),
		transform.InsertColumn(sifprep.GeneColumn, 0, ""),
		assignCyclic(numGenes),
		transform.SortStableByInt(sifprep.GeneColumn),
	)
}

// assignCyclic sets the group index of the row at position i to i mod numGenes
func assignCyclic(numGenes int) sifprep.TableOperation {
	return transform.Map(func(rowNum int, row sifprep.Row) error {
		return row.Set(sifprep.GeneColumn, strconv.Itoa(rowNum%numGenes))
	})
}

// Sizes returns the number of rows with each group index, indexed by group
func Sizes(t sifprep.Table) ([]int, error) {
	values, err := t.Column(sifprep.GeneColumn)
	if err != nil {
		return nil, err
	}
	var sizes []int
	for _, v := range values {
		g, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if g < 0 {
			return nil, fmt.Errorf("Column %s contains negative group index %d", sifprep.GeneColumn, g)
		}
		for len(sizes) <= g {
			sizes = append(sizes, 0)
		}
		sizes[g]++
	}
	return sizes, nil
}
