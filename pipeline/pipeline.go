// Package pipeline runs the group assignment and stratified split pipelines end to end:
// loading the input file, transforming it, and writing every output.
package pipeline

import (
	"fmt"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/datasource/file"
	"github.com/go-sif/sifprep/datasource/parser/dsv"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/stats"
	"github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// GroupName identifies the group assignment pipeline in logs and reports
	GroupName = "assign"
	// SplitName identifies the stratified split pipeline in logs and reports
	SplitName = "split"
)

// Env holds the collaborators shared by every pipeline
type Env struct {
	Fs        afero.Fs
	Parser    *dsv.Parser
	Logger    *zap.Logger
	OutputDir string // Outputs are written here. Defaults to the directory of the input.
}

// ClassCount records how the Rows of one class were split
type ClassCount struct {
	Class string `json:"class"`
	Train int    `json:"train"`
	Test  int    `json:"test"`
	Total int    `json:"total"`
}

// Summary describes a completed pipeline invocation
type Summary struct {
	RunID    string
	Pipeline string
	Input    string
	Rows     int
	Label    string
	Seed     int64
	Classes  []ClassCount // split only, in order of first appearance
	Groups   []int        // assign only, the size of each group
	Outputs  []*sifprep.WriteResult
	Stats    *stats.RunStatistics
}

// run carries the per-invocation state of a pipeline
type run struct {
	env     *Env
	summary *Summary
	logger  *zap.Logger
	source  sifprep.DataSource
	sink    sifprep.DataSink
}

func newRun(env *Env, name string, input string) (*run, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("Unable to generate run id: %w", err)
	}
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parser := env.Parser
	if parser == nil {
		parser = dsv.CreateParser(nil)
	}
	summary := &Summary{
		RunID:    id.String(),
		Pipeline: name,
		Input:    input,
		Stats:    &stats.RunStatistics{},
	}
	summary.Stats.Start()
	return &run{
		env:     env,
		summary: summary,
		logger:  logger.With(zap.String("run_id", summary.RunID), zap.String("pipeline", name), zap.String("input", input)),
		source:  file.CreateDataSource(env.Fs, parser),
		sink:    file.CreateDataSink(env.Fs, parser),
	}, nil
}

// step times fn as a named step producing some number of Rows
func (r *run) step(name string, fn func() (int, error)) error {
	r.summary.Stats.StartStep(name)
	rows, err := fn()
	elapsed := r.summary.Stats.EndStep(rows)
	if err != nil {
		r.logger.Debug("step failed", zap.String("step", name), zap.Duration("duration", elapsed), zap.Error(err))
		return err
	}
	r.logger.Debug("step complete", zap.String("step", name), zap.Int("rows", rows), zap.Duration("duration", elapsed))
	return nil
}

func (r *run) load() (sifprep.Table, error) {
	var t sifprep.Table
	err := r.step("load", func() (int, error) {
		var err error
		t, err = r.source.Load(r.summary.Input)
		if err != nil {
			return 0, err
		}
		if t.NumRows() == 0 {
			return 0, errors.EmptyInputError{Path: r.summary.Input}
		}
		return t.NumRows(), nil
	})
	if err != nil {
		return nil, err
	}
	r.summary.Rows = t.NumRows()
	return t, nil
}

func (r *run) write(outputs ...sifprep.Output) error {
	return r.step("write", func() (int, error) {
		results, err := r.sink.WriteAll(outputs...)
		if err != nil {
			return 0, err
		}
		rows := 0
		for _, res := range results {
			rows += res.Rows
			r.logger.Info("wrote output",
				zap.String("path", res.Name),
				zap.Int("rows", res.Rows),
				zap.Int("bytes", res.Bytes),
				zap.String("xxhash", fmt.Sprintf("%016x", res.Checksum)),
			)
		}
		r.summary.Outputs = results
		return rows, nil
	})
}

func (r *run) outputPath(prefix string) string {
	return file.OutputPath(r.summary.Input, prefix, r.env.OutputDir)
}

func (r *run) fail(err error) (*Summary, error) {
	r.summary.Stats.Finish()
	r.logger.Error("pipeline failed", zap.Error(err))
	return nil, err
}

func (r *run) finish() (*Summary, error) {
	r.summary.Stats.Finish()
	r.logger.Info("pipeline complete", zap.Int("rows", r.summary.Rows), zap.Duration("runtime", r.summary.Stats.GetRuntime()))
	return r.summary, nil
}
