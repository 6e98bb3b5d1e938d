package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/younsl/shotty/pkg/formatter"
	"github.com/younsl/shotty/pkg/pricing"
)

func newVolumesCmd(opts *globalOptions) *cobra.Command {
	volumesCmd := &cobra.Command{
		Use:   "volumes",
		Short: "Commands for volumes",
	}

	var project string
	var showCost bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all EC2 volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, cfg, err := opts.newRunner(ctx)
			if err != nil {
				return err
			}

			var estimator *pricing.Estimator
			if showCost {
				estimator = pricing.NewEstimatorFromConfig(cfg, opts.logger)
				runner.WithPricer(estimator)
			}

			started := time.Now()
			s := startResourceSpinner("volumes")
			volumes, err := runner.Volumes(ctx, project)
			stopResourceSpinner(s, "volumes", len(volumes), started, err)
			if err != nil {
				return err
			}

			formatter.PrintVolumes(os.Stdout, volumes, opts.format, showCost)
			if estimator != nil && opts.format == formatter.FormatTable {
				formatter.PrintPricingAPIStats(os.Stdout, estimator.APIStats())
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&project, "project", "", "Only volumes of instances with this Project tag")
	listCmd.Flags().BoolVar(&showCost, "show-cost", false, "Show estimated monthly cost per volume")

	volumesCmd.AddCommand(listCmd)
	return volumesCmd
}
