package cli

import (
	"fmt"

	"github.com/go-sif/sifprep/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) newSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split <data_set>",
		Short: "Split <data_set> 90/10 into training and testing sets, stratified by label",
		Long: `Moves the label column to the front of <data_set> and splits its rows so that
10% of every class lands in test_<data_set> and the rest in train_<data_set>.
The split always uses the seed 42, so repeated runs produce identical files.`,
		Example: `  sifprep split iris.csv`,
		Args:    withUsage(cobra.ExactArgs(1)),
		RunE:    a.runSplit,
	}
}

func (a *app) runSplit(cmd *cobra.Command, args []string) error {
	env, err := a.env(cmd)
	if err != nil {
		return err
	}
	p := &pipeline.SplitPipeline{Env: env}
	summary, err := p.Run(args[0])
	if err != nil {
		env.Logger.Sync()
		return err
	}
	train, test := summary.Outputs[0], summary.Outputs[1]
	fmt.Fprintf(a.stdout, "Data successfully split into '%s' and '%s' with stratified sampling.\n", train.Name, test.Name)
	fmt.Fprintf(a.stdout, "Training set size: %d\n", train.Rows)
	fmt.Fprintf(a.stdout, "Testing set size: %d\n", test.Rows)
	return a.finish(env, summary)
}
