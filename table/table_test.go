package table

import (
	"testing"

	"github.com/go-sif/sifprep"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords([]string{"a", "label"}, [][]string{{"1", "x"}, {"2", "y"}})
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
	val, err := tbl.GetRow(1).Get("label")
	require.Nil(t, err)
	require.Equal(t, "y", val)
	labels, err := tbl.Column("label")
	require.Nil(t, err)
	require.Equal(t, []string{"x", "y"}, labels)
	_, err = tbl.Column("missing")
	require.NotNil(t, err)
}

func TestFromRecordsReportsEveryIncompatibleRow(t *testing.T) {
	_, err := FromRecords([]string{"a", "b"}, [][]string{{"1"}, {"1", "2"}, {"1", "2", "3"}})
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.Equal(t, errors.IncompatibleRowError{Row: 1, Width: 1, Expected: 2}, merr.Errors[0])
	require.Equal(t, errors.IncompatibleRowError{Row: 3, Width: 3, Expected: 2}, merr.Errors[1])
}

func TestFromRecordsDuplicateHeader(t *testing.T) {
	_, err := FromRecords([]string{"a", "a"}, nil)
	require.IsType(t, errors.InvalidArgumentError{}, err)
}

func TestRecordsAreCopies(t *testing.T) {
	records := [][]string{{"1", "x"}}
	tbl, err := FromRecords([]string{"a", "label"}, records)
	require.Nil(t, err)
	records[0][0] = "changed"
	out := tbl.Records()
	require.Equal(t, "1", out[0][0])
	out[0][0] = "changed"
	require.Equal(t, []string{"1", "x"}, tbl.GetRow(0).Values())
}

func TestRowSetAndToString(t *testing.T) {
	tbl, err := FromRecords([]string{"a", "label"}, [][]string{{"1", "x"}})
	require.Nil(t, err)
	r := tbl.GetRow(0)
	require.Nil(t, r.Set("a", "2"))
	require.NotNil(t, r.Set("missing", "2"))
	require.Equal(t, "{a: 2, label: x}", r.ToString())
}

func TestToChainsOperations(t *testing.T) {
	tbl, err := FromRecords([]string{"a"}, [][]string{{"1"}})
	require.Nil(t, err)
	calls := 0
	op := func(in sifprep.Table) (sifprep.Table, error) {
		calls++
		return in, nil
	}
	out, err := tbl.To(op, op, op)
	require.Nil(t, err)
	require.Equal(t, 3, calls)
	require.Equal(t, tbl, out)
}

func TestForEachRow(t *testing.T) {
	tbl, err := FromRecords([]string{"a"}, [][]string{{"1"}, {"2"}, {"3"}})
	require.Nil(t, err)
	seen := []int{}
	err = tbl.ForEachRow(func(rowNum int, row sifprep.Row) error {
		seen = append(seen, rowNum)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int{0, 1, 2}, seen)
}
