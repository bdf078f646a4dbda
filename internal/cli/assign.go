package cli

import (
	"fmt"
	"strconv"

	"github.com/go-sif/sifprep/datasource/file"
	errors "github.com/go-sif/sifprep/errors"
	"github.com/go-sif/sifprep/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) newAssignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <data_set> <number_of_genes> [random_seed]",
		Short: "Assign every row of <data_set> to one of <number_of_genes> groups",
		Long: `Moves the label column to the front of <data_set>, shuffles its rows, assigns
row i to group i mod <number_of_genes> and stably sorts the rows by group.
The result is written to preprocessed_<data_set>, with the group index in
the first column, named __gene__.`,
		Example: `  sifprep assign iris.csv 5
  sifprep assign iris.csv 5 1234 --report run.json`,
		Args: withUsage(cobra.RangeArgs(2, 3)),
		RunE: a.runAssign,
	}
}

func (a *app) runAssign(cmd *cobra.Command, args []string) error {
	env, err := a.env(cmd)
	if err != nil {
		return err
	}
	exists, err := file.CreateDataSource(env.Fs, env.Parser).Exists(args[0])
	if err != nil || !exists {
		return errors.FileNotFoundError{Path: args[0], Err: err}
	}
	numGenes, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.InvalidArgumentError{
			Name:   "<number_of_genes>",
			Value:  args[1],
			Reason: "Please enter a valid integer",
		}
	}
	var seed *int64
	if len(args) > 2 {
		s, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return errors.InvalidArgumentError{
				Name:   "<random_seed>",
				Value:  args[2],
				Reason: "Please enter a valid integer",
			}
		}
		seed = &s
	}

	p := &pipeline.GroupPipeline{Env: env, NumGenes: numGenes, Seed: seed}
	summary, err := p.Run(args[0])
	if err != nil {
		env.Logger.Sync()
		return err
	}
	fmt.Fprintf(a.stdout, "Data successfully grouped into '%s'.\n", summary.Outputs[0].Name)
	fmt.Fprintf(a.stdout, "Rows: %d\n", summary.Rows)
	fmt.Fprintf(a.stdout, "Groups: %d\n", len(summary.Groups))
	fmt.Fprintf(a.stdout, "Random seed: %d\n", summary.Seed)
	return a.finish(env, summary)
}
