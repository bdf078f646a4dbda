// Package split partitions a Table into training and testing Tables while
// preserving the proportion of every class in both.
package split

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/go-sif/sifprep"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/operations/label"
	"github.com/go-sif/sifprep/operations/transform"
)

// Partition is the result of a stratified split. Train and Test are independent
// copies; both have the label column first.
type Partition struct {
	Label string
	Train sifprep.Table
	Test  sifprep.Table
}

// TestCount returns the number of members of a class of classSize rows which are
// assigned to the test partition: testFraction*classSize rounded half up, and never
// so many that the training partition would lose the class entirely.
func TestCount(classSize int, testFraction float64) int {
	n := int(math.Floor(testFraction*float64(classSize) + 0.5))
	if n > classSize-1 {
		n = classSize - 1
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Stratified locates the label column of t using candidates and splits t's rows so
// that, for every class, TestCount of its rows (chosen using rng) land in the test
// partition and the remainder in the training partition. Each partition is then
// shuffled with rng, so that classes are interleaved.
func Stratified(t sifprep.Table, candidates []string, testFraction float64, rng *rand.Rand) (*Partition, error) {
	if !(testFraction > 0 && testFraction < 1) {
		return nil, errors.InvalidArgumentError{
			Name:   "test_fraction",
			Value:  strconv.FormatFloat(testFraction, 'g', -1, 64),
			Reason: "must be strictly between 0 and 1",
		}
	}
	if t.NumRows() == 0 {
		return nil, errors.EmptyInputError{}
	}
	located, labelCol, err := label.Locate(t, candidates)
	if err != nil {
		return nil, err
	}
	labels, err := located.Column(labelCol)
	if err != nil {
		return nil, err
	}
	features, err := located.To(transform.RemoveColumn(labelCol))
	if err != nil {
		return nil, err
	}

	classes, members := byClass(labels)
	for _, class := range classes {
		if len(members[class]) < sifprep.MinClassSize {
			return nil, errors.InsufficientClassSizeError{Class: class, Size: len(members[class]), Min: sifprep.MinClassSize}
		}
	}

	var trainRows, testRows []int
	for _, class := range classes {
		rowNums := members[class]
		rng.Shuffle(len(rowNums), func(i, j int) {
			rowNums[i], rowNums[j] = rowNums[j], rowNums[i]
		})
		cut := TestCount(len(rowNums), testFraction)
		testRows = append(testRows, rowNums[:cut]...)
		trainRows = append(trainRows, rowNums[cut:]...)
	}
	for _, rowNums := range [][]int{trainRows, testRows} {
		rng.Shuffle(len(rowNums), func(i, j int) {
			rowNums[i], rowNums[j] = rowNums[j], rowNums[i]
		})
	}

	train, err := recombine(features, labelCol, labels, trainRows)
	if err != nil {
		return nil, err
	}
	test, err := recombine(features, labelCol, labels, testRows)
	if err != nil {
		return nil, err
	}
	return &Partition{Label: labelCol, Train: train, Test: test}, nil
}

// byClass groups row numbers by label value. Classes are ordered by first appearance.
func byClass(labels []string) ([]string, map[string][]int) {
	var classes []string
	members := make(map[string][]int)
	for i, l := range labels {
		if _, seen := members[l]; !seen {
			classes = append(classes, l)
		}
		members[l] = append(members[l], i)
	}
	return classes, members
}

// recombine selects rowNums from features and restores the label column as the first column
func recombine(features sifprep.Table, labelCol string, labels []string, rowNums []int) (sifprep.Table, error) {
	return features.To(
		transform.Select(rowNums),
		transform.InsertColumn(labelCol, 0, ""),
		transform.Map(func(rowNum int, row sifprep.Row) error {
			return row.Set(labelCol, labels[rowNums[rowNum]])
		}),
	)
}
