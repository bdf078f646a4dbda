package file

import (
	"io"
	"os"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/datasource/parser/dsv"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/spf13/afero"
)

// DataSource loads Tables from delimited files
type DataSource struct {
	fs     afero.Fs
	parser *dsv.Parser
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(fs afero.Fs, parser *dsv.Parser) *DataSource {
	return &DataSource{fs: fs, parser: parser}
}

// Exists returns true iff path names a regular file
func (ds *DataSource) Exists(path string) (bool, error) {
	info, err := ds.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// Load reads an entire file into a Table. A missing file produces a FileNotFoundError,
// and a file without even a header row produces an EmptyInputError.
func (ds *DataSource) Load(path string) (sifprep.Table, error) {
	exists, err := ds.Exists(path)
	if err != nil {
		return nil, errors.FileNotFoundError{Path: path, Err: err}
	}
	if !exists {
		return nil, errors.FileNotFoundError{Path: path}
	}
	f, err := ds.fs.Open(path)
	if err != nil {
		return nil, errors.FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	r, release, err := codecFor(path).decompress(f)
	if err != nil {
		return nil, err
	}
	defer release()
	t, err := ds.parser.Parse(r)
	if err == io.EOF {
		return nil, errors.EmptyInputError{Path: path}
	} else if err != nil {
		return nil, err
	}
	return t, nil
}
