package accumulators

import (
	"fmt"

	"github.com/go-sif/sifprep"
)

// ValueCounter returns a factory for ValueCount Accumulators over the named column
func ValueCounter(colName string) sifprep.AccumulatorFactory {
	return func() sifprep.Accumulator {
		return &ValueCount{colName: colName, counts: make(map[string]int)}
	}
}

// ValueCount counts rows per distinct value of a column, remembering the order
// in which values were first seen
type ValueCount struct {
	colName string
	order   []string
	counts  map[string]int
	total   int
}

// Accumulate adds a row to this Accumulator
func (a *ValueCount) Accumulate(row sifprep.Row) error {
	val, err := row.Get(a.colName)
	if err != nil {
		return err
	}
	a.add(val, 1)
	return nil
}

// Merge merges another Accumulator into this one. Values new to this Accumulator
// are ordered after existing values, in the other Accumulator's order.
func (a *ValueCount) Merge(o sifprep.Accumulator) error {
	vc, ok := o.(*ValueCount)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a ValueCount Accumulator")
	}
	if vc.colName != a.colName {
		return fmt.Errorf("Cannot merge counts of column %s into counts of column %s", vc.colName, a.colName)
	}
	for _, val := range vc.order {
		a.add(val, vc.counts[val])
	}
	return nil
}

func (a *ValueCount) add(val string, n int) {
	if _, seen := a.counts[val]; !seen {
		a.order = append(a.order, val)
	}
	a.counts[val] += n
	a.total += n
}

// Values returns the distinct values seen, in first-seen order
func (a *ValueCount) Values() []string {
	return append([]string(nil), a.order...)
}

// Count returns the number of rows seen with the given value
func (a *ValueCount) Count(val string) int {
	return a.counts[val]
}

// Total returns the number of rows seen
func (a *ValueCount) Total() int {
	return a.total
}

// CountColumn accumulates every Row of a Table into a fresh ValueCount over colName
func CountColumn(t sifprep.Table, colName string) (*ValueCount, error) {
	acc := ValueCounter(colName)().(*ValueCount)
	err := t.ForEachRow(func(rowNum int, row sifprep.Row) error {
		return acc.Accumulate(row)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}
