package sifprep

const (
	// GeneColumn is the name of the group index column inserted by the group assigner.
	// It is chosen so that it cannot collide with ordinary data column names.
	GeneColumn = "__gene__"
	// MinGenes is the smallest number of groups the group assigner will produce
	MinGenes = 2
	// DefaultTestFraction is the fraction of each class assigned to the test partition of a split
	DefaultTestFraction = 0.1
	// DefaultSplitSeed seeds the generator used by the split pipeline
	DefaultSplitSeed int64 = 42
	// MinClassSize is the smallest number of members a class may have for a stratified split
	MinClassSize = 2
)
