package file

import (
	"bytes"
	"testing"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/datasource/parser/dsv"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/table"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testData = "a,label\n1,x\n2,y\n"

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	require.Nil(t, afero.WriteFile(fs, path, data, 0o644))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/data/in.csv", []byte(testData))
	ds := CreateDataSource(fs, dsv.CreateParser(nil))
	tbl, err := ds.Load("/data/in.csv")
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
	require.Equal(t, []string{"a", "label"}, tbl.GetSchema().ColumnNames())
}

func TestLoadMissingFile(t *testing.T) {
	ds := CreateDataSource(afero.NewMemMapFs(), dsv.CreateParser(nil))
	exists, err := ds.Exists("/nope.csv")
	require.Nil(t, err)
	require.False(t, exists)
	_, err = ds.Load("/nope.csv")
	require.IsType(t, errors.FileNotFoundError{}, err)
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Nil(t, fs.MkdirAll("/data", 0o755))
	_, err := CreateDataSource(fs, dsv.CreateParser(nil)).Load("/data")
	require.IsType(t, errors.FileNotFoundError{}, err)
}

func TestLoadEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/empty.csv", nil)
	_, err := CreateDataSource(fs, dsv.CreateParser(nil)).Load("/empty.csv")
	require.Equal(t, errors.EmptyInputError{Path: "/empty.csv"}, err)
}

func TestLoadCompressed(t *testing.T) {
	var lz4Buf bytes.Buffer
	lw := lz4.NewWriter(&lz4Buf)
	_, err := lw.Write([]byte(testData))
	require.Nil(t, err)
	require.Nil(t, lw.Close())

	var zstdBuf bytes.Buffer
	zw, err := zstd.NewWriter(&zstdBuf)
	require.Nil(t, err)
	_, err = zw.Write([]byte(testData))
	require.Nil(t, err)
	require.Nil(t, zw.Close())

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/in.csv.lz4", lz4Buf.Bytes())
	writeFile(t, fs, "/in.csv.zst", zstdBuf.Bytes())
	ds := CreateDataSource(fs, dsv.CreateParser(nil))
	for _, path := range []string{"/in.csv.lz4", "/in.csv.zst"} {
		tbl, err := ds.Load(path)
		require.Nil(t, err, path)
		require.Equal(t, [][]string{{"1", "x"}, {"2", "y"}}, tbl.Records(), path)
	}
}

func TestOutputPath(t *testing.T) {
	require.Equal(t, "/data/train_in.csv", OutputPath("/data/in.csv", TrainPrefix, ""))
	require.Equal(t, "/out/preprocessed_in.csv", OutputPath("/data/in.csv", GroupPrefix, "/out"))
	require.Equal(t, "test_in.csv", OutputPath("in.csv", TestPrefix, ""))
}

func createOutput(t *testing.T, name string) sifprep.Output {
	tbl, err := table.FromRecords([]string{"a", "label"}, [][]string{{"1", "x"}})
	require.Nil(t, err)
	return sifprep.Output{Name: name, Table: tbl}
}

func TestWriteAllRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	parser := dsv.CreateParser(nil)
	sink := CreateDataSink(fs, parser)
	results, err := sink.WriteAll(createOutput(t, "/out/a.csv"), createOutput(t, "/out/b.csv.zst"), createOutput(t, "/out/c.csv.lz4"))
	require.Nil(t, err)
	require.Len(t, results, 3)

	plain, err := afero.ReadFile(fs, "/out/a.csv")
	require.Nil(t, err)
	require.Equal(t, "a,label\n1,x\n", string(plain))
	require.Equal(t, len(plain), results[0].Bytes)
	require.Equal(t, 1, results[0].Rows)
	require.NotZero(t, results[0].Checksum)

	ds := CreateDataSource(fs, parser)
	for _, r := range results {
		tbl, err := ds.Load(r.Name)
		require.Nil(t, err, r.Name)
		require.Equal(t, [][]string{{"1", "x"}}, tbl.Records())
	}

	// no temporary files are left behind
	entries, err := afero.ReadDir(fs, "/out")
	require.Nil(t, err)
	require.Len(t, entries, 3)
}

// renameFailFs fails to rename anything onto target
type renameFailFs struct {
	afero.Fs
	target string
}

func (fs *renameFailFs) Rename(oldname, newname string) error {
	if newname == fs.target {
		return afero.ErrFileClosed
	}
	return fs.Fs.Rename(oldname, newname)
}

func TestWriteAllRemovesEarlierOutputsOnFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := &renameFailFs{Fs: base, target: "/out/test_in.csv"}
	sink := CreateDataSink(fs, dsv.CreateParser(nil))
	_, err := sink.WriteAll(createOutput(t, "/out/train_in.csv"), createOutput(t, "/out/test_in.csv"))
	require.IsType(t, errors.WriteFailureError{}, err)
	require.Equal(t, "/out/test_in.csv", err.(errors.WriteFailureError).Path)

	entries, err := afero.ReadDir(base, "/out")
	require.Nil(t, err)
	require.Empty(t, entries)
}

func TestWriteAllReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := CreateDataSink(fs, dsv.CreateParser(nil)).WriteAll(createOutput(t, "/a.csv"))
	require.IsType(t, errors.WriteFailureError{}, err)
}
