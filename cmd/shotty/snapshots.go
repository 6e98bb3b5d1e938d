package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/younsl/shotty/pkg/formatter"
)

func newSnapshotsCmd(opts *globalOptions) *cobra.Command {
	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Commands for snapshots",
	}

	var project string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, _, err := opts.newRunner(ctx)
			if err != nil {
				return err
			}

			started := time.Now()
			s := startResourceSpinner("snapshots")
			snapshots, err := runner.Snapshots(ctx, project)
			stopResourceSpinner(s, "snapshots", len(snapshots), started, err)
			if err != nil {
				return err
			}

			formatter.PrintSnapshots(os.Stdout, snapshots, opts.format)
			return nil
		},
	}
	listCmd.Flags().StringVar(&project, "project", "", "Only snapshots of instances with this Project tag")

	snapshotsCmd.AddCommand(listCmd)
	return snapshotsCmd
}
