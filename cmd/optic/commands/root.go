// Package commands implements the CLI commands for optic.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/optic/internal/app"
	"go.trai.ch/optic/internal/build"
	"go.trai.ch/optic/internal/core/domain"
)

// envPrefix prefixes the environment variables bound to the global flags.
const envPrefix = "OPTIC"

// CLI represents the command line interface for optic.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	config  *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(json bool, logFile string) error
	Optimize(ctx context.Context, opts app.OptimizeOptions) error
	Clear(ctx context.Context, opts app.ClearOptions) error
	Inspect(ctx context.Context, opts app.InspectOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "optic",
		Short:         "Precompute resource lookup caches for layered applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to "+domain.ProjectFileName+" (default: search upwards from the working directory)")
	flags.String("cache-dir", "", "Override the cache directory of the project file")
	flags.Bool("json", false, "Write logs as JSON")
	flags.Bool("verbose", false, "Log the duration of every optimization phase")
	flags.String("log-file", "", "Also write a JSON debug log to this file")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		config:  v,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.app.ConfigureLogging(v.GetBool("json"), v.GetString("log-file"))
	}

	rootCmd.AddCommand(c.newOptimizeCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// targetArgs is the positional argument contract shared by every target command.
var targetArgs = cobra.RangeArgs(1, 2)

// target builds the target options from positional arguments and global settings.
func (c *CLI) target(args []string) app.TargetOptions {
	opts := app.TargetOptions{
		Application: args[0],
		Environment: domain.DefaultEnvironment,
		ConfigPath:  c.config.GetString("config"),
		CacheDir:    c.config.GetString("cache-dir"),
	}
	if len(args) > 1 {
		opts.Environment = args[1]
	}
	return opts
}
