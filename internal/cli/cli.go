// Package cli implements the sifprep command line: the assign and split commands,
// their configuration, and the translation of failures into messages and exit codes.
package cli

import (
	"fmt"
	"io"

	"github.com/go-sif/sifprep/config"
	"github.com/go-sif/sifprep/datasource/parser/dsv"
	"github.com/go-sif/sifprep/logging"
	"github.com/go-sif/sifprep/pipeline"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options holds the values of the global flags of one invocation
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	outputDir  string
	reportPath string
}

// app carries everything an invocation needs, so that no state is shared between invocations
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	opts   options
}

// Run executes the command line described by args and returns the process exit status
func Run(args []string, stdout io.Writer, stderr io.Writer, fs afero.Fs) int {
	a := &app{fs: fs, stdout: stdout, stderr: stderr}
	root := a.newRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, Message(err))
		return 1
	}
	return 0
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sifprep",
		Short:         "Prepare labelled tabular data sets for model training",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "log format: console or json")
	flags.StringVar(&a.opts.outputDir, "output-dir", "", "directory for output files (defaults to the directory of <data_set>)")
	flags.StringVar(&a.opts.reportPath, "report", "", "write a JSON report of the run to this path")

	root.AddCommand(a.newAssignCommand(), a.newSplitCommand())
	return root
}

// env builds the pipeline environment from the configuration file, overridden by any flags which were set
func (a *app) env(cmd *cobra.Command) (*pipeline.Env, error) {
	cfg := config.Default()
	if a.opts.configPath != "" {
		var err error
		if cfg, err = config.Load(a.fs, a.opts.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.opts.logFormat
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = a.opts.outputDir
	}

	conf, err := cfg.ParserConf()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.stderr)
	if err != nil {
		return nil, err
	}
	return &pipeline.Env{
		Fs:        a.fs,
		Parser:    dsv.CreateParser(conf),
		Logger:    logger,
		OutputDir: cfg.Output.Dir,
	}, nil
}

// finish writes the run report, if one was requested
func (a *app) finish(env *pipeline.Env, summary *pipeline.Summary) error {
	defer env.Logger.Sync()
	if a.opts.reportPath == "" {
		return nil
	}
	if err := pipeline.WriteReport(a.fs, a.opts.reportPath, summary); err != nil {
		return fmt.Errorf("Unable to write report %s: %w", a.opts.reportPath, err)
	}
	return nil
}

// usageError occurs when a command is invoked with the wrong number of arguments
type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return "Usage: " + e.usage
}

func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{usage: cmd.UseLine()}
		}
		return nil
	}
}
