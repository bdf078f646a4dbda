package split

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/accumulators"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/operations/label"
	"github.com/go-sif/sifprep/random"
	"github.com/go-sif/sifprep/table"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// createTestSplitTable builds a Table with an "id" column identifying each row,
// and a "class" label column with sizes[i] members of class "c<i>"
func createTestSplitTable(t require.TestingT, sizes []int) sifprep.Table {
	records := [][]string{}
	id := 0
	for c, size := range sizes {
		for i := 0; i < size; i++ {
			records = append(records, []string{strconv.Itoa(id), fmt.Sprintf("c%d", c), fmt.Sprintf("x%d", id)})
			id++
		}
	}
	tbl, err := table.FromRecords([]string{"id", "class", "feature"}, records)
	require.Nil(t, err)
	return tbl
}

func TestTestCount(t *testing.T) {
	require.Equal(t, 1, TestCount(5, 0.1))  // 0.5 rounds up
	require.Equal(t, 1, TestCount(10, 0.1)) // exact
	require.Equal(t, 2, TestCount(15, 0.1)) // 1.5 rounds up
	require.Equal(t, 0, TestCount(4, 0.1))
	require.Equal(t, 1, TestCount(2, 0.9)) // training keeps one row
}

func TestTenRowsTwoClasses(t *testing.T) {
	part, err := Stratified(createTestSplitTable(t, []int{5, 5}), label.DefaultCandidates(), sifprep.DefaultTestFraction, random.New(sifprep.DefaultSplitSeed))
	require.Nil(t, err)
	require.Equal(t, "class", part.Label)
	require.Equal(t, 8, part.Train.NumRows())
	require.Equal(t, 2, part.Test.NumRows())
	counts, err := accumulators.CountColumn(part.Test, "class")
	require.Nil(t, err)
	require.Equal(t, 1, counts.Count("c0"))
	require.Equal(t, 1, counts.Count("c1"))
}

func TestLabelColumnComesFirst(t *testing.T) {
	part, err := Stratified(createTestSplitTable(t, []int{4, 6}), label.DefaultCandidates(), 0.1, random.New(1))
	require.Nil(t, err)
	require.Equal(t, []string{"class", "id", "feature"}, part.Train.GetSchema().ColumnNames())
	require.Equal(t, []string{"class", "id", "feature"}, part.Test.GetSchema().ColumnNames())
}

func TestFeaturesStayPairedWithLabels(t *testing.T) {
	source := createTestSplitTable(t, []int{7, 9, 13})
	expected := map[string]string{}
	require.Nil(t, source.ForEachRow(func(rowNum int, row sifprep.Row) error {
		id, _ := row.Get("id")
		class, _ := row.Get("class")
		expected[id] = class
		return nil
	}))
	part, err := Stratified(source, label.DefaultCandidates(), 0.1, random.New(5))
	require.Nil(t, err)
	for _, tbl := range []sifprep.Table{part.Train, part.Test} {
		require.Nil(t, tbl.ForEachRow(func(rowNum int, row sifprep.Row) error {
			id, _ := row.Get("id")
			class, _ := row.Get("class")
			require.Equal(t, expected[id], class)
			feature, _ := row.Get("feature")
			require.Equal(t, "x"+id, feature)
			return nil
		}))
	}
}

func TestSplitIsDeterministicForASeed(t *testing.T) {
	source := createTestSplitTable(t, []int{12, 30})
	a, err := Stratified(source, label.DefaultCandidates(), 0.1, random.New(42))
	require.Nil(t, err)
	b, err := Stratified(source, label.DefaultCandidates(), 0.1, random.New(42))
	require.Nil(t, err)
	require.Equal(t, a.Train.Records(), b.Train.Records())
	require.Equal(t, a.Test.Records(), b.Test.Records())
}

func TestPartitionsAreIndependentCopies(t *testing.T) {
	part, err := Stratified(createTestSplitTable(t, []int{10, 10}), label.DefaultCandidates(), 0.1, random.New(42))
	require.Nil(t, err)
	before := part.Test.Records()
	require.Nil(t, part.Train.GetRow(0).Set("feature", "mutated"))
	require.Equal(t, before, part.Test.Records())
}

func TestSplitErrors(t *testing.T) {
	_, err := Stratified(createTestSplitTable(t, []int{5, 1}), label.DefaultCandidates(), 0.1, random.New(42))
	require.Equal(t, errors.InsufficientClassSizeError{Class: "c1", Size: 1, Min: 2}, err)

	empty, err := table.FromRecords([]string{"label"}, nil)
	require.Nil(t, err)
	_, err = Stratified(empty, label.DefaultCandidates(), 0.1, random.New(42))
	require.IsType(t, errors.EmptyInputError{}, err)

	unlabelled, err := table.FromRecords([]string{"x"}, [][]string{{"1"}, {"2"}})
	require.Nil(t, err)
	_, err = Stratified(unlabelled, label.DefaultCandidates(), 0.1, random.New(42))
	require.IsType(t, errors.LabelNotFoundError{}, err)

	for _, fraction := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err = Stratified(createTestSplitTable(t, []int{5, 5}), label.DefaultCandidates(), fraction, random.New(42))
		require.IsType(t, errors.InvalidArgumentError{}, err)
	}
}

func TestPropertyStratifiedProportionsAndRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sizes := rapid.SliceOfN(rapid.IntRange(2, 60), 1, 6).Draw(t, "sizes")
		seed := rapid.Int64().Draw(t, "seed")
		source := createTestSplitTable(t, sizes)

		part, err := Stratified(source, label.DefaultCandidates(), sifprep.DefaultTestFraction, random.New(seed))
		require.Nil(t, err)

		testCounts, err := accumulators.CountColumn(part.Test, "class")
		require.Nil(t, err)
		for c, size := range sizes {
			class := fmt.Sprintf("c%d", c)
			ratio := float64(testCounts.Count(class)) / float64(size)
			require.LessOrEqual(t, math.Abs(ratio-sifprep.DefaultTestFraction), 1/float64(size))
		}

		// every source row appears exactly once across both partitions
		sourceIDs, err := source.Column("id")
		require.Nil(t, err)
		trainIDs, err := part.Train.Column("id")
		require.Nil(t, err)
		testIDs, err := part.Test.Column("id")
		require.Nil(t, err)
		require.ElementsMatch(t, sourceIDs, append(trainIDs, testIDs...))
	})
}
