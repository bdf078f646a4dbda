package sifprep

// An Accumulator siphons data from Rows into a custom data structure,
// such as a count of rows per class. Accumulators produced by the same
// factory may be merged, e.g. to combine the train and test partitions
// of a split into a view of the whole Table.
type Accumulator interface {
	Accumulate(row Row) error  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
}

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator
