package shotty

import (
	"context"

	"github.com/younsl/shotty/internal/models"
)

// Instances returns the instances selected by project
func (r *Runner) Instances(ctx context.Context, project string) ([]models.InstanceInfo, error) {
	r.logger.Debug("listing instances", "project", project, "region", r.ec2.Region())
	return r.ec2.ListInstances(ctx, project)
}

// Volumes returns the volumes attached to the instances selected by project,
// grouped by instance in instance order.
func (r *Runner) Volumes(ctx context.Context, project string) ([]models.VolumeInfo, error) {
	instances, err := r.Instances(ctx, project)
	if err != nil {
		return nil, err
	}

	volumes := []models.VolumeInfo{}
	for _, instance := range instances {
		attached, err := r.ec2.ListVolumes(ctx, instance.InstanceID)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("listed volumes", "instance", instance.InstanceID, "count", len(attached))

		for _, volume := range attached {
			if r.pricer != nil {
				cost, source := r.pricer.VolumeMonthlyCost(ctx, volume.VolumeType, volume.Size, r.ec2.Region())
				volume.EstimatedMonthlyCost = cost
				volume.PricingSource = string(source)
			}
			volumes = append(volumes, volume)
		}
	}

	return volumes, nil
}

// Snapshots returns the snapshots of every volume attached to the instances
// selected by project, grouped by instance and then by volume.
func (r *Runner) Snapshots(ctx context.Context, project string) ([]models.SnapshotInfo, error) {
	instances, err := r.Instances(ctx, project)
	if err != nil {
		return nil, err
	}

	snapshots := []models.SnapshotInfo{}
	for _, instance := range instances {
		volumes, err := r.ec2.ListVolumes(ctx, instance.InstanceID)
		if err != nil {
			return nil, err
		}

		for _, volume := range volumes {
			found, err := r.ec2.ListSnapshots(ctx, volume.VolumeID)
			if err != nil {
				return nil, err
			}
			for _, snapshot := range found {
				snapshot.InstanceID = instance.InstanceID
				snapshots = append(snapshots, snapshot)
			}
		}
	}

	return snapshots, nil
}
