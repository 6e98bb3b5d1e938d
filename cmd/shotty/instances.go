package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/younsl/shotty/internal/shotty"
	"github.com/younsl/shotty/pkg/formatter"
)

func newInstancesCmd(opts *globalOptions) *cobra.Command {
	instancesCmd := &cobra.Command{
		Use:   "instances",
		Short: "Commands for instances",
	}

	instancesCmd.AddCommand(
		newInstancesListCmd(opts),
		newInstancesStartCmd(opts),
		newInstancesStopCmd(opts),
		newInstancesSnapshotCmd(opts),
	)
	return instancesCmd
}

func newInstancesListCmd(opts *globalOptions) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, _, err := opts.newRunner(ctx)
			if err != nil {
				return err
			}

			started := time.Now()
			s := startResourceSpinner("instances")
			instances, err := runner.Instances(ctx, project)
			stopResourceSpinner(s, "instances", len(instances), started, err)
			if err != nil {
				return err
			}

			formatter.PrintInstances(os.Stdout, instances, opts.format)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only instances with this Project tag")
	return cmd
}

func newInstancesStartCmd(opts *globalOptions) *cobra.Command {
	var project string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := opts.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return runner.StartInstances(cmd.Context(), project, dryRun)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only instances with this Project tag")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Check permissions without starting anything")
	return cmd
}

func newInstancesStopCmd(opts *globalOptions) *cobra.Command {
	var project string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := opts.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return runner.StopInstances(cmd.Context(), project, dryRun)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only instances with this Project tag")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Check permissions without stopping anything")
	return cmd
}

func newInstancesSnapshotCmd(opts *globalOptions) *cobra.Command {
	var project string
	snapshotOpts := shotty.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Creates snapshot of EC2 instances",
		Long: `Creates a snapshot of every volume attached to each selected instance.

Each instance is stopped before its volumes are snapshotted and started again
afterwards. Instances are processed one at a time and the first failure aborts
the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := opts.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			return runner.SnapshotInstances(cmd.Context(), project, snapshotOpts)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only instances with this Project tag")
	cmd.Flags().StringVar(&snapshotOpts.Description, "description", shotty.DefaultSnapshotDescription,
		"Description set on each snapshot")
	cmd.Flags().DurationVar(&snapshotOpts.WaitTimeout, "wait-timeout", shotty.DefaultWaitTimeout,
		"Maximum time to wait for each instance to stop or start")
	return cmd
}
