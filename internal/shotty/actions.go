package shotty

import (
	"context"
	"fmt"
	"time"

	"github.com/younsl/shotty/pkg/aws"
)

// SnapshotOptions controls SnapshotInstances
type SnapshotOptions struct {
	// Description is set on every snapshot created
	Description string
	// WaitTimeout bounds each wait for the stopped and running states
	WaitTimeout time.Duration
}

func (o SnapshotOptions) withDefaults() SnapshotOptions {
	if o.Description == "" {
		o.Description = DefaultSnapshotDescription
	}
	if o.WaitTimeout <= 0 {
		o.WaitTimeout = DefaultWaitTimeout
	}
	return o
}

// StartInstances starts every instance selected by project
func (r *Runner) StartInstances(ctx context.Context, project string, dryRun bool) error {
	return r.changeState(ctx, project, dryRun, "Starting", "start", r.ec2.StartInstance)
}

// StopInstances stops every instance selected by project
func (r *Runner) StopInstances(ctx context.Context, project string, dryRun bool) error {
	return r.changeState(ctx, project, dryRun, "Stopping", "stop", r.ec2.StopInstance)
}

// changeState applies action to each selected instance in turn. Instances
// the EC2 service rejects are logged and skipped.
func (r *Runner) changeState(ctx context.Context, project string, dryRun bool, progress, action string,
	apply func(ctx context.Context, instanceID string, dryRun bool) error) error {
	instances, err := r.Instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {
		fmt.Fprintf(r.out, "%s: %s\n", progress, instance.InstanceID)

		if err := apply(ctx, instance.InstanceID, dryRun); err != nil {
			if !aws.IsAPIError(err) {
				return err
			}
			r.logger.Warn(fmt.Sprintf("Could not %s %s", action, instance.InstanceID),
				"code", aws.ErrorCode(err), "err", err)
			continue
		}

		if dryRun {
			fmt.Fprintf(r.out, " Dry run: %s of %s would succeed\n", action, instance.InstanceID)
		}
	}

	return nil
}

// SnapshotInstances snapshots every volume of each selected instance while
// the instance is stopped: stop, wait, snapshot each volume, start, wait.
// Instances are handled one at a time and the first failure aborts.
func (r *Runner) SnapshotInstances(ctx context.Context, project string, opts SnapshotOptions) error {
	opts = opts.withDefaults()

	instances, err := r.Instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {
		id := instance.InstanceID

		fmt.Fprintf(r.out, "Stopping %s...\n", id)
		if err := r.ec2.StopInstance(ctx, id, false); err != nil {
			return err
		}
		if err := r.ec2.WaitUntilStopped(ctx, id, opts.WaitTimeout); err != nil {
			return err
		}

		volumes, err := r.ec2.ListVolumes(ctx, id)
		if err != nil {
			return err
		}

		for _, volume := range volumes {
			fmt.Fprintf(r.out, "Creating snapshot of %s\n", volume.VolumeID)
			snapshotID, err := r.ec2.CreateSnapshot(ctx, volume.VolumeID, opts.Description)
			if err != nil {
				return err
			}
			r.logger.Debug("snapshot started", "snapshot", snapshotID, "volume", volume.VolumeID, "instance", id)
		}

		fmt.Fprintf(r.out, "Starting %s...\n", id)
		if err := r.ec2.StartInstance(ctx, id, false); err != nil {
			return err
		}
		if err := r.ec2.WaitUntilRunning(ctx, id, opts.WaitTimeout); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.out, "Job's done")
	return nil
}
