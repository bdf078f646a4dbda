package file

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/datasource/parser/dsv"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

const (
	// GroupPrefix names the output of the group assigner
	GroupPrefix = "preprocessed_"
	// TrainPrefix names the training partition of a split
	TrainPrefix = "train_"
	// TestPrefix names the testing partition of a split
	TestPrefix = "test_"
)

// OutputPath derives the path of an output from its input: the input's base name
// with prefix prepended, placed in outputDir, or beside the input if outputDir is empty
func OutputPath(input string, prefix string, outputDir string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, prefix+filepath.Base(input))
}

// DataSink writes Tables to delimited files
type DataSink struct {
	fs     afero.Fs
	parser *dsv.Parser
}

// CreateDataSink is a factory for DataSinks
func CreateDataSink(fs afero.Fs, parser *dsv.Parser) *DataSink {
	return &DataSink{fs: fs, parser: parser}
}

// WriteAll renders every Output in memory, then writes each one atomically. If any
// write fails, Outputs which were already written are removed again, so that either
// all Outputs exist or none do.
func (s *DataSink) WriteAll(outputs ...sifprep.Output) ([]*sifprep.WriteResult, error) {
	rendered := make([][]byte, len(outputs))
	for i, o := range outputs {
		data, err := s.render(o)
		if err != nil {
			return nil, errors.WriteFailureError{Path: o.Name, Err: err}
		}
		rendered[i] = data
	}

	results := make([]*sifprep.WriteResult, len(outputs))
	for i, o := range outputs {
		if err := s.writeAtomic(o.Name, rendered[i]); err != nil {
			return nil, s.rollback(outputs[:i], errors.WriteFailureError{Path: o.Name, Err: err})
		}
		results[i] = &sifprep.WriteResult{
			Name:     o.Name,
			Rows:     o.Table.NumRows(),
			Bytes:    len(rendered[i]),
			Checksum: xxhash.Sum64(rendered[i]),
		}
	}
	return results, nil
}

func (s *DataSink) render(o sifprep.Output) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.parser.Write(&buf, o.Table); err != nil {
		return nil, err
	}
	return codecFor(o.Name).compress(buf.Bytes())
}

// writeAtomic writes data to a temporary file beside path, then renames it into place
func (s *DataSink) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = s.fs.Rename(tmp.Name(), path)
	}
	if err != nil {
		s.fs.Remove(tmp.Name())
		return err
	}
	return nil
}

// rollback removes already written outputs after cause. Failures to remove are combined with cause.
func (s *DataSink) rollback(written []sifprep.Output, cause error) error {
	var merr *multierror.Error
	for _, o := range written {
		if err := s.fs.Remove(o.Name); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("Unable to remove partial output %s: %w", o.Name, err))
		}
	}
	if merr == nil {
		return cause
	}
	return multierror.Append(cause, merr.Errors...)
}
