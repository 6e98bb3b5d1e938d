package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younsl/shotty/internal/logging"
	"github.com/younsl/shotty/internal/shotty"
	"github.com/younsl/shotty/internal/version"
	"github.com/younsl/shotty/pkg/aws"
	"github.com/younsl/shotty/pkg/formatter"
	"github.com/younsl/shotty/pkg/utils"
)

// DefaultProfile is the shared config profile used unless --profile says otherwise
const DefaultProfile = "shotty"

// globalOptions holds the persistent flags of the root command
type globalOptions struct {
	profile      string
	region       string
	outputFormat string
	logLevel     string

	// resolved in PersistentPreRunE
	format formatter.Format
	logger *log.Logger
}

// startResourceSpinner creates and starts a spinner with a message for the given resource
func startResourceSpinner(resource string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Collecting %s ...", resource)
	// FinalMSG is set by the caller once the item count is known
	s.Start()
	return s
}

// stopResourceSpinner stops s, reporting how many items were found
func stopResourceSpinner(s *spinner.Spinner, resource string, count int, started time.Time, err error) {
	if err != nil {
		s.FinalMSG = fmt.Sprintf("✗ Collecting %s failed after %.2f seconds\n", resource, time.Since(started).Seconds())
	} else {
		s.FinalMSG = fmt.Sprintf("✓ [%d %s found] Completed in %.2f seconds\n",
			count, resource, time.Since(started).Seconds())
	}
	s.Stop()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "shotty",
		Short: "Shotty manages snapshots from AWS cloud",
		Long: `shotty lists EC2 instances, volumes and snapshots, starts and stops
instances, and snapshots every volume of an instance while it is stopped.

Resources are selected with --project, which matches the "Project" tag.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
	}

	rootCmd.SetVersionTemplate("shotty version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", DefaultProfile,
		"AWS shared config profile (empty uses the default credential chain)")
	rootCmd.PersistentFlags().StringVarP(&opts.region, "region", "r", "",
		fmt.Sprintf("AWS region (default: from profile or environment, then %s)", utils.GetDefaultRegion()))
	rootCmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", string(formatter.FormatTable),
		fmt.Sprintf("Output format: %s or %s", formatter.FormatTable, formatter.FormatPlain))
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		fmt.Sprintf("Log level: %s", strings.Join(logging.Levels, ", ")))

	rootCmd.AddCommand(
		newVolumesCmd(opts),
		newSnapshotsCmd(opts),
		newInstancesCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// resolve validates the persistent flags and builds the logger
func (o *globalOptions) resolve() error {
	logger, err := logging.New(os.Stderr, o.logLevel)
	if err != nil {
		return err
	}
	o.logger = logger

	format, err := formatter.ParseFormat(o.outputFormat)
	if err != nil {
		return err
	}
	o.format = format

	if o.region != "" && !utils.IsValidRegion(o.region) {
		return fmt.Errorf("invalid region '%s'", o.region)
	}

	return nil
}

// loadConfig loads the AWS configuration selected by the persistent flags
func (o *globalOptions) loadConfig(ctx context.Context) (awssdk.Config, error) {
	cfg, err := aws.LoadConfig(ctx, aws.Options{
		Profile: o.profile,
		Region:  o.region,
	})
	if err != nil {
		return awssdk.Config{}, err
	}
	o.logger.Debug("loaded AWS config", "profile", o.profile, "region", cfg.Region)
	return cfg, nil
}

// newRunner builds a Runner backed by the EC2 API
func (o *globalOptions) newRunner(ctx context.Context) (*shotty.Runner, awssdk.Config, error) {
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return nil, awssdk.Config{}, err
	}
	return shotty.NewRunner(aws.NewClientFromConfig(cfg), os.Stdout, o.logger), cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
