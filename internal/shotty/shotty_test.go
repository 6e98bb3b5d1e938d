package shotty

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/younsl/shotty/pkg/aws"
	"github.com/younsl/shotty/pkg/aws/mocks"
	"github.com/younsl/shotty/pkg/pricing"
)

type fixture struct {
	api    *mocks.EC2API
	out    *bytes.Buffer
	logs   *bytes.Buffer
	runner *Runner
}

func newFixture(t *testing.T) *fixture {
	api := mocks.NewEC2API(t)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	logger := log.NewWithOptions(logs, log.Options{Level: log.DebugLevel})

	return &fixture{
		api:    api,
		out:    out,
		logs:   logs,
		runner: NewRunner(aws.NewClientWithAPI(api, "us-east-1"), out, logger),
	}
}

func instance(id string, state types.InstanceStateName) types.Instance {
	return types.Instance{
		InstanceId: awssdk.String(id),
		State:      &types.InstanceState{Name: state},
	}
}

func describeOutput(instances ...types.Instance) *ec2.DescribeInstancesOutput {
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{{Instances: instances}},
	}
}

// expectList expects the instance selection call for project
func (f *fixture) expectList(project string, instances ...types.Instance) {
	f.api.On("DescribeInstances", mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeInstancesInput) bool {
			if len(input.InstanceIds) != 0 {
				return false
			}
			if project == "" {
				return len(input.Filters) == 0
			}
			return len(input.Filters) == 1 && input.Filters[0].Values[0] == project
		}),
	).Return(describeOutput(instances...), nil).Once()
}

// expectWait expects one waiter poll for id reporting state
func (f *fixture) expectWait(id string, state types.InstanceStateName) {
	f.api.On("DescribeInstances", mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeInstancesInput) bool {
			return len(input.InstanceIds) == 1 && input.InstanceIds[0] == id
		}),
	).Return(describeOutput(instance(id, state)), nil).Once()
}

func (f *fixture) expectVolumes(instanceID string, volumes ...types.Volume) {
	f.api.On("DescribeVolumes", mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeVolumesInput) bool {
			return input.Filters[0].Values[0] == instanceID
		}),
	).Return(&ec2.DescribeVolumesOutput{Volumes: volumes}, nil).Once()
}

func volume(id, volumeType string, size int32) types.Volume {
	return types.Volume{
		VolumeId:   awssdk.String(id),
		State:      types.VolumeStateInUse,
		Size:       awssdk.Int32(size),
		VolumeType: types.VolumeType(volumeType),
	}
}

func matchInstanceID(id string) interface{} {
	return mock.MatchedBy(func(input interface{}) bool {
		switch in := input.(type) {
		case *ec2.StartInstancesInput:
			return len(in.InstanceIds) == 1 && in.InstanceIds[0] == id
		case *ec2.StopInstancesInput:
			return len(in.InstanceIds) == 1 && in.InstanceIds[0] == id
		}
		return false
	})
}

type fixedPricer struct{ perGB float64 }

func (p fixedPricer) VolumeMonthlyCost(_ context.Context, _ string, sizeGB int, _ string) (float64, pricing.PricingSource) {
	return float64(sizeGB) * p.perGB, pricing.PricingSourceDefault
}

func TestInstances_PassesProjectFilter(t *testing.T) {
	f := newFixture(t)
	f.expectList("valkyrie", instance("i-1", types.InstanceStateNameRunning))

	instances, err := f.runner.Instances(context.Background(), "valkyrie")

	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "i-1", instances[0].InstanceID)
}

func TestVolumes_GroupedByInstance(t *testing.T) {
	f := newFixture(t)
	f.expectList("",
		instance("i-1", types.InstanceStateNameRunning),
		instance("i-2", types.InstanceStateNameStopped),
	)
	f.expectVolumes("i-1", volume("vol-1", "gp3", 8), volume("vol-2", "gp3", 20))
	f.expectVolumes("i-2", volume("vol-3", "st1", 500))

	volumes, err := f.runner.Volumes(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, volumes, 3)
	assert.Equal(t, []string{"vol-1", "vol-2", "vol-3"},
		[]string{volumes[0].VolumeID, volumes[1].VolumeID, volumes[2].VolumeID})
	assert.Equal(t, "i-1", volumes[1].InstanceID)
	assert.Equal(t, "i-2", volumes[2].InstanceID)
	assert.Empty(t, volumes[0].PricingSource)
}

func TestVolumes_WithPricer(t *testing.T) {
	f := newFixture(t)
	f.runner.WithPricer(fixedPricer{perGB: 0.1})
	f.expectList("", instance("i-1", types.InstanceStateNameRunning))
	f.expectVolumes("i-1", volume("vol-1", "gp2", 50))

	volumes, err := f.runner.Volumes(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, volumes, 1)
	assert.InDelta(t, 5.0, volumes[0].EstimatedMonthlyCost, 0.0001)
	assert.Equal(t, "Default", volumes[0].PricingSource)
}

func TestVolumes_ErrorAborts(t *testing.T) {
	f := newFixture(t)
	f.expectList("", instance("i-1", types.InstanceStateNameRunning))
	f.api.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "UnauthorizedOperation"}).Once()

	volumes, err := f.runner.Volumes(context.Background(), "")

	assert.Nil(t, volumes)
	assert.True(t, aws.IsErrorCategory(err, aws.ErrPermissionDenied))
}

func TestSnapshots_CarryInstanceID(t *testing.T) {
	f := newFixture(t)
	started := time.Date(2024, 5, 4, 12, 30, 0, 0, time.UTC)

	f.expectList("valkyrie", instance("i-1", types.InstanceStateNameRunning))
	f.expectVolumes("i-1", volume("vol-1", "gp3", 8), volume("vol-2", "gp3", 8))
	f.api.On("DescribeSnapshots", mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeSnapshotsInput) bool {
			return input.Filters[0].Values[0] == "vol-1"
		}),
	).Return(&ec2.DescribeSnapshotsOutput{
		Snapshots: []types.Snapshot{
			{SnapshotId: awssdk.String("snap-1"), State: types.SnapshotStateCompleted, Progress: awssdk.String("100%"), StartTime: &started},
			{SnapshotId: awssdk.String("snap-2"), State: types.SnapshotStatePending, Progress: awssdk.String("40%"), StartTime: &started},
		},
	}, nil).Once()
	f.api.On("DescribeSnapshots", mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeSnapshotsInput) bool {
			return input.Filters[0].Values[0] == "vol-2"
		}),
	).Return(&ec2.DescribeSnapshotsOutput{}, nil).Once()

	snapshots, err := f.runner.Snapshots(context.Background(), "valkyrie")

	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	for _, snapshot := range snapshots {
		assert.Equal(t, "i-1", snapshot.InstanceID)
		assert.Equal(t, "vol-1", snapshot.VolumeID)
	}
	assert.Equal(t, "pending", snapshots[1].State)
	assert.Equal(t, "40%", snapshots[1].Progress)
}

func TestStartInstances_SkipsRejectedInstances(t *testing.T) {
	f := newFixture(t)
	f.expectList("",
		instance("i-1", types.InstanceStateNameTerminated),
		instance("i-2", types.InstanceStateNameStopped),
	)
	f.api.On("StartInstances", mock.Anything, matchInstanceID("i-1")).
		Return(nil, &smithy.GenericAPIError{Code: "IncorrectInstanceState", Message: "instance is terminated"}).Once()
	f.api.On("StartInstances", mock.Anything, matchInstanceID("i-2")).
		Return(&ec2.StartInstancesOutput{}, nil).Once()

	err := f.runner.StartInstances(context.Background(), "", false)

	require.NoError(t, err)
	assert.Equal(t, "Starting: i-1\nStarting: i-2\n", f.out.String())
	assert.Contains(t, f.logs.String(), "Could not start i-1")
	assert.Contains(t, f.logs.String(), "IncorrectInstanceState")
}

func TestStopInstances_TransportErrorAborts(t *testing.T) {
	f := newFixture(t)
	f.expectList("",
		instance("i-1", types.InstanceStateNameRunning),
		instance("i-2", types.InstanceStateNameRunning),
	)
	f.api.On("StopInstances", mock.Anything, matchInstanceID("i-1")).
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	err := f.runner.StopInstances(context.Background(), "", false)

	require.Error(t, err)
	assert.Equal(t, "Stopping: i-1\n", f.out.String())
	f.api.AssertNotCalled(t, "StopInstances", mock.Anything, matchInstanceID("i-2"))
}

func TestStopInstances_DryRun(t *testing.T) {
	f := newFixture(t)
	f.expectList("web", instance("i-1", types.InstanceStateNameRunning))
	f.api.On("StopInstances", mock.Anything,
		mock.MatchedBy(func(input *ec2.StopInstancesInput) bool {
			return awssdk.ToBool(input.DryRun)
		}),
	).Return(nil, &smithy.GenericAPIError{Code: "DryRunOperation"}).Once()

	err := f.runner.StopInstances(context.Background(), "web", true)

	require.NoError(t, err)
	assert.Equal(t, "Stopping: i-1\n Dry run: stop of i-1 would succeed\n", f.out.String())
}

func TestSnapshotInstances_StopSnapshotStart(t *testing.T) {
	f := newFixture(t)
	f.expectList("valkyrie", instance("i-1", types.InstanceStateNameRunning))

	f.api.On("StopInstances", mock.Anything, matchInstanceID("i-1")).
		Return(&ec2.StopInstancesOutput{}, nil).Once()
	f.expectWait("i-1", types.InstanceStateNameStopped)
	f.expectVolumes("i-1", volume("vol-1", "gp3", 8), volume("vol-2", "gp3", 16))
	f.api.On("CreateSnapshot", mock.Anything,
		mock.MatchedBy(func(input *ec2.CreateSnapshotInput) bool {
			return awssdk.ToString(input.Description) == DefaultSnapshotDescription
		}),
	).Return(&ec2.CreateSnapshotOutput{SnapshotId: awssdk.String("snap-new")}, nil).Twice()
	f.api.On("StartInstances", mock.Anything, matchInstanceID("i-1")).
		Return(&ec2.StartInstancesOutput{}, nil).Once()
	f.expectWait("i-1", types.InstanceStateNameRunning)

	err := f.runner.SnapshotInstances(context.Background(), "valkyrie", SnapshotOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Stopping i-1...\n"+
		"Creating snapshot of vol-1\n"+
		"Creating snapshot of vol-2\n"+
		"Starting i-1...\n"+
		"Job's done\n", f.out.String())
}

func TestSnapshotInstances_CustomDescription(t *testing.T) {
	f := newFixture(t)
	f.expectList("", instance("i-1", types.InstanceStateNameStopped))

	f.api.On("StopInstances", mock.Anything, matchInstanceID("i-1")).
		Return(&ec2.StopInstancesOutput{}, nil).Once()
	f.expectWait("i-1", types.InstanceStateNameStopped)
	f.expectVolumes("i-1", volume("vol-1", "gp3", 8))
	f.api.On("CreateSnapshot", mock.Anything,
		mock.MatchedBy(func(input *ec2.CreateSnapshotInput) bool {
			return awssdk.ToString(input.Description) == "before upgrade"
		}),
	).Return(&ec2.CreateSnapshotOutput{SnapshotId: awssdk.String("snap-new")}, nil).Once()
	f.api.On("StartInstances", mock.Anything, matchInstanceID("i-1")).
		Return(&ec2.StartInstancesOutput{}, nil).Once()
	f.expectWait("i-1", types.InstanceStateNameRunning)

	err := f.runner.SnapshotInstances(context.Background(), "", SnapshotOptions{
		Description: "before upgrade",
		WaitTimeout: time.Minute,
	})

	require.NoError(t, err)
}

func TestSnapshotInstances_StopFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.expectList("",
		instance("i-1", types.InstanceStateNameRunning),
		instance("i-2", types.InstanceStateNameRunning),
	)
	f.api.On("StopInstances", mock.Anything, matchInstanceID("i-1")).
		Return(nil, &smithy.GenericAPIError{Code: "UnsupportedOperation"}).Once()

	err := f.runner.SnapshotInstances(context.Background(), "", SnapshotOptions{})

	require.Error(t, err)
	assert.True(t, aws.IsErrorCategory(err, aws.ErrIncorrectState))
	assert.Equal(t, "Stopping i-1...\n", f.out.String())
	f.api.AssertNotCalled(t, "CreateSnapshot", mock.Anything, mock.Anything)
}

func TestSnapshotInstances_SnapshotFailureAbortsBeforeRestart(t *testing.T) {
	f := newFixture(t)
	f.expectList("", instance("i-1", types.InstanceStateNameRunning))
	f.api.On("StopInstances", mock.Anything, matchInstanceID("i-1")).
		Return(&ec2.StopInstancesOutput{}, nil).Once()
	f.expectWait("i-1", types.InstanceStateNameStopped)
	f.expectVolumes("i-1", volume("vol-1", "gp3", 8), volume("vol-2", "gp3", 8))
	f.api.On("CreateSnapshot", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "SnapshotCreationPerVolumeRateExceeded"}).Once()

	err := f.runner.SnapshotInstances(context.Background(), "", SnapshotOptions{})

	require.Error(t, err)
	assert.True(t, aws.IsErrorCategory(err, aws.ErrThrottling))
	assert.NotContains(t, f.out.String(), "Starting i-1")
	assert.NotContains(t, f.out.String(), "Job's done")
}

func TestSnapshotOptions_Defaults(t *testing.T) {
	opts := SnapshotOptions{}.withDefaults()
	assert.Equal(t, DefaultSnapshotDescription, opts.Description)
	assert.Equal(t, DefaultWaitTimeout, opts.WaitTimeout)
}
