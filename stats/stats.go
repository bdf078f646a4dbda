// Package stats records timings and row counts for the steps of a pipeline invocation
package stats

import (
	"time"
)

// RunStatistics contains statistics about a running pipeline
type RunStatistics struct {
	started      bool
	finished     bool
	startTime    time.Time
	totalRuntime time.Duration
	stepNames    []string
	stepRuntimes []time.Duration
	stepRows     []int

	// temp vars
	currentStepStartTime time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	if !rs.finished {
		rs.totalRuntime = time.Since(rs.startTime)
		rs.finished = true
	}
}

// StartStep tracks the beginning of a new named step
func (rs *RunStatistics) StartStep(name string) {
	rs.Start()
	rs.stepNames = append(rs.stepNames, name)
	rs.stepRuntimes = append(rs.stepRuntimes, 0)
	rs.stepRows = append(rs.stepRows, 0)
	rs.currentStepStartTime = time.Now()
}

// EndStep tracks the end of the most recently started step, which produced numRows Rows.
// It returns the runtime of the step.
func (rs *RunStatistics) EndStep(numRows int) time.Duration {
	if len(rs.stepNames) == 0 {
		return 0
	}
	sidx := len(rs.stepNames) - 1
	rs.stepRuntimes[sidx] = time.Since(rs.currentStepStartTime)
	rs.stepRows[sidx] = numRows
	return rs.stepRuntimes[sidx]
}

// GetStartTime returns the start time of the pipeline
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the pipeline
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetStepNames returns the names of all recorded steps, in execution order
func (rs *RunStatistics) GetStepNames() []string {
	return rs.stepNames
}

// GetStepRuntimes returns the runtime of each recorded step, in execution order
func (rs *RunStatistics) GetStepRuntimes() []time.Duration {
	return rs.stepRuntimes
}

// GetNumRowsProcessed returns the number of Rows produced by each recorded step, in execution order
func (rs *RunStatistics) GetNumRowsProcessed() []int {
	return rs.stepRows
}
