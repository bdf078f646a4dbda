package pipeline

import (
	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/datasource/file"
	"github.com/go-sif/sifprep/operations/group"
	"github.com/go-sif/sifprep/operations/label"
	"github.com/go-sif/sifprep/random"
	"go.uber.org/zap"
)

// GroupPipeline assigns every Row of an input file to one of NumGenes groups and
// writes the result to preprocessed_<input>
type GroupPipeline struct {
	Env      *Env
	NumGenes int
	Seed     *int64 // nil draws a seed, which is logged and reported
}

// Run executes the pipeline against input. Nothing is written unless every step succeeds.
func (p *GroupPipeline) Run(input string) (*Summary, error) {
	r, err := newRun(p.Env, GroupName, input)
	if err != nil {
		return nil, err
	}
	t, err := r.load()
	if err != nil {
		return r.fail(err)
	}

	rng, seed := random.FromOptionalSeed(p.Seed)
	r.summary.Seed = seed
	if p.Seed == nil {
		r.logger.Info("no seed supplied, drew one", zap.Int64("seed", seed))
	}

	candidates := label.DefaultCandidates()
	var out sifprep.Table
	err = r.step("assign", func() (int, error) {
		out, err = group.Assign(t, candidates, p.NumGenes, rng)
		if err != nil {
			return 0, err
		}
		return out.NumRows(), nil
	})
	if err != nil {
		return r.fail(err)
	}
	if r.summary.Label, err = label.Find(t.GetSchema(), candidates); err != nil {
		return r.fail(err)
	}
	if r.summary.Groups, err = group.Sizes(out); err != nil {
		return r.fail(err)
	}

	if err := r.write(sifprep.Output{Name: r.outputPath(file.GroupPrefix), Table: out}); err != nil {
		return r.fail(err)
	}
	return r.finish()
}
