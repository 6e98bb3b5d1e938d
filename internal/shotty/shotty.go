// Package shotty implements the list and action commands over EC2
// instances, volumes and snapshots selected by the Project tag.
//
// Every command walks the selected instances sequentially. Start and stop
// skip instances the EC2 service refuses; every other failure aborts.
package shotty

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/pricing"
)

const (
	// DefaultSnapshotDescription is attached to snapshots created by SnapshotInstances
	DefaultSnapshotDescription = "Created by AWS Instance Snapshots"

	// DefaultWaitTimeout bounds each wait for an instance state change
	DefaultWaitTimeout = 15 * time.Minute
)

// EC2 is the set of EC2 operations the commands are built from
type EC2 interface {
	Region() string
	ListInstances(ctx context.Context, project string) ([]models.InstanceInfo, error)
	ListVolumes(ctx context.Context, instanceID string) ([]models.VolumeInfo, error)
	ListSnapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error)
	StartInstance(ctx context.Context, instanceID string, dryRun bool) error
	StopInstance(ctx context.Context, instanceID string, dryRun bool) error
	WaitUntilStopped(ctx context.Context, instanceID string, maxWait time.Duration) error
	WaitUntilRunning(ctx context.Context, instanceID string, maxWait time.Duration) error
	CreateSnapshot(ctx context.Context, volumeID, description string) (string, error)
}

// VolumePricer estimates the monthly cost of a volume
type VolumePricer interface {
	VolumeMonthlyCost(ctx context.Context, volumeType string, sizeGB int, region string) (float64, pricing.PricingSource)
}

// Runner executes shotty commands. Progress lines go to out, diagnostics
// to the logger.
type Runner struct {
	ec2    EC2
	out    io.Writer
	logger *log.Logger
	pricer VolumePricer
}

// NewRunner creates a Runner
func NewRunner(ec2 EC2, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		ec2:    ec2,
		out:    out,
		logger: logger,
	}
}

// WithPricer enables cost estimates on Volumes
func (r *Runner) WithPricer(pricer VolumePricer) *Runner {
	r.pricer = pricer
	return r
}
