package sifprep

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a pipeline invocation
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the pipeline
	GetStartTime() time.Time
	// GetRuntime returns the running time of the pipeline
	GetRuntime() time.Duration
	// GetStepNames returns the names of all recorded steps, in execution order
	GetStepNames() []string
	// GetStepRuntimes returns the runtime of each recorded step, in execution order
	GetStepRuntimes() []time.Duration
	// GetNumRowsProcessed returns the number of Rows produced by each recorded step, in execution order
	GetNumRowsProcessed() []int
}
