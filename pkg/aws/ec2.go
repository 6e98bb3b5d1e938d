package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/utils"
)

// dryRunOperation is the code EC2 returns when a dry run would have succeeded
const dryRunOperation = "DryRunOperation"

// ProjectFilters returns the DescribeInstances filters selecting a project.
// An empty project selects every instance.
func ProjectFilters(project string) []types.Filter {
	if project == "" {
		return nil
	}
	return []types.Filter{
		{
			Name:   aws.String("tag:" + utils.ProjectTagKey),
			Values: []string{project},
		},
	}
}

// ListInstances returns the instances tagged with the given project, or all
// instances when project is empty, in API order.
func (c *Client) ListInstances(ctx context.Context, project string) ([]models.InstanceInfo, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: ProjectFilters(project),
	}

	instances := []models.InstanceInfo{}

	paginator := ec2.NewDescribeInstancesPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, InstanceResourceType, "", "error querying EC2 instances")
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toInstanceInfo(instance))
			}
		}
	}

	return instances, nil
}

func toInstanceInfo(instance types.Instance) models.InstanceInfo {
	info := models.InstanceInfo{
		InstanceID:    aws.ToString(instance.InstanceId),
		Name:          utils.GetName(instance.Tags),
		InstanceType:  string(instance.InstanceType),
		PublicDNSName: aws.ToString(instance.PublicDnsName),
		Project:       utils.GetProject(instance.Tags),
		LaunchTime:    instance.LaunchTime,
		Tags:          utils.GetTagsMap(instance.Tags),
	}
	if instance.Placement != nil {
		info.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		info.State = string(instance.State.Name)
	}
	return info
}

// StartInstance starts a single instance. With dryRun set, EC2 only checks
// permissions and a successful check returns nil.
func (c *Client) StartInstance(ctx context.Context, instanceID string, dryRun bool) error {
	_, err := c.api.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(dryRun),
	})
	if dryRun && ErrorCode(err) == dryRunOperation {
		return nil
	}
	if err != nil {
		return ClassifyAWSError(err, InstanceResourceType, instanceID, "error starting instance")
	}
	return nil
}

// StopInstance stops a single instance. With dryRun set, EC2 only checks
// permissions and a successful check returns nil.
func (c *Client) StopInstance(ctx context.Context, instanceID string, dryRun bool) error {
	_, err := c.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(dryRun),
	})
	if dryRun && ErrorCode(err) == dryRunOperation {
		return nil
	}
	if err != nil {
		return ClassifyAWSError(err, InstanceResourceType, instanceID, "error stopping instance")
	}
	return nil
}

// WaitUntilStopped blocks until the instance reports the stopped state or
// maxWait elapses.
func (c *Client) WaitUntilStopped(ctx context.Context, instanceID string, maxWait time.Duration) error {
	waiter := ec2.NewInstanceStoppedWaiter(c.api)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, maxWait)
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("waiting for stopped state: %w", err),
			InstanceResourceType, instanceID, "error waiting for instance")
	}
	return nil
}

// WaitUntilRunning blocks until the instance reports the running state or
// maxWait elapses.
func (c *Client) WaitUntilRunning(ctx context.Context, instanceID string, maxWait time.Duration) error {
	waiter := ec2.NewInstanceRunningWaiter(c.api)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, maxWait)
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("waiting for running state: %w", err),
			InstanceResourceType, instanceID, "error waiting for instance")
	}
	return nil
}
