package pipeline

import (
	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/accumulators"
	"github.com/go-sif/sifprep/datasource/file"
	"github.com/go-sif/sifprep/operations/label"
	"github.com/go-sif/sifprep/operations/split"
	"github.com/go-sif/sifprep/random"
)

// SplitPipeline divides the Rows of an input file into train_<input> and test_<input>,
// preserving the proportion of every class in both
type SplitPipeline struct {
	Env          *Env
	TestFraction float64 // Defaults to sifprep.DefaultTestFraction
	Seed         *int64  // Defaults to sifprep.DefaultSplitSeed
}

// Run executes the pipeline against input. Either both outputs are written or neither is.
func (p *SplitPipeline) Run(input string) (*Summary, error) {
	r, err := newRun(p.Env, SplitName, input)
	if err != nil {
		return nil, err
	}
	testFraction := p.TestFraction
	if testFraction == 0 {
		testFraction = sifprep.DefaultTestFraction
	}
	seed := sifprep.DefaultSplitSeed
	if p.Seed != nil {
		seed = *p.Seed
	}
	r.summary.Seed = seed

	t, err := r.load()
	if err != nil {
		return r.fail(err)
	}

	var part *split.Partition
	err = r.step("split", func() (int, error) {
		part, err = split.Stratified(t, label.DefaultCandidates(), testFraction, random.New(seed))
		if err != nil {
			return 0, err
		}
		return part.Train.NumRows() + part.Test.NumRows(), nil
	})
	if err != nil {
		return r.fail(err)
	}
	r.summary.Label = part.Label
	if r.summary.Classes, err = classCounts(t, part); err != nil {
		return r.fail(err)
	}

	err = r.write(
		sifprep.Output{Name: r.outputPath(file.TrainPrefix), Table: part.Train},
		sifprep.Output{Name: r.outputPath(file.TestPrefix), Table: part.Test},
	)
	if err != nil {
		return r.fail(err)
	}
	return r.finish()
}

// classCounts tallies the classes of a Partition, in their order of first appearance in the input
func classCounts(input sifprep.Table, part *split.Partition) ([]ClassCount, error) {
	total, err := accumulators.CountColumn(input, part.Label)
	if err != nil {
		return nil, err
	}
	train, err := accumulators.CountColumn(part.Train, part.Label)
	if err != nil {
		return nil, err
	}
	test, err := accumulators.CountColumn(part.Test, part.Label)
	if err != nil {
		return nil, err
	}
	counts := make([]ClassCount, 0, len(total.Values()))
	for _, class := range total.Values() {
		counts = append(counts, ClassCount{
			Class: class,
			Train: train.Count(class),
			Test:  test.Count(class),
			Total: total.Count(class),
		})
	}
	return counts, nil
}
