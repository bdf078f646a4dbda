package accumulators

import (
	"testing"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
	"github.com/stretchr/testify/require"
)

type otherAccumulator struct{}

func (o *otherAccumulator) Accumulate(row sifprep.Row) error  { return nil }
func (o *otherAccumulator) Merge(a sifprep.Accumulator) error { return nil }

func TestCountColumn(t *testing.T) {
	tbl, err := table.FromRecords([]string{"label"}, [][]string{{"b"}, {"a"}, {"b"}, {"c"}, {"b"}})
	require.Nil(t, err)
	acc, err := CountColumn(tbl, "label")
	require.Nil(t, err)
	require.Equal(t, []string{"b", "a", "c"}, acc.Values())
	require.Equal(t, 3, acc.Count("b"))
	require.Equal(t, 0, acc.Count("z"))
	require.Equal(t, 5, acc.Total())

	_, err = CountColumn(tbl, "missing")
	require.NotNil(t, err)
}

func TestMerge(t *testing.T) {
	left, err := table.FromRecords([]string{"label"}, [][]string{{"x"}, {"y"}})
	require.Nil(t, err)
	right, err := table.FromRecords([]string{"label"}, [][]string{{"z"}, {"x"}})
	require.Nil(t, err)
	l, err := CountColumn(left, "label")
	require.Nil(t, err)
	r, err := CountColumn(right, "label")
	require.Nil(t, err)
	require.Nil(t, l.Merge(r))
	require.Equal(t, []string{"x", "y", "z"}, l.Values())
	require.Equal(t, 2, l.Count("x"))
	require.Equal(t, 4, l.Total())

	require.NotNil(t, l.Merge(&otherAccumulator{}))
	require.NotNil(t, l.Merge(ValueCounter("other")()))
}
