package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/utils"
)

// ListVolumes returns the EBS volumes attached to the given instance
func (c *Client) ListVolumes(ctx context.Context, instanceID string) ([]models.VolumeInfo, error) {
	input := &ec2.DescribeVolumesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("attachment.instance-id"),
				Values: []string{instanceID},
			},
		},
	}

	volumes := []models.VolumeInfo{}

	paginator := ec2.NewDescribeVolumesPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, InstanceResourceType, instanceID, "error querying EBS volumes")
		}

		for _, volume := range page.Volumes {
			volumes = append(volumes, models.VolumeInfo{
				VolumeID:         aws.ToString(volume.VolumeId),
				InstanceID:       instanceID,
				State:            string(volume.State),
				Size:             utils.SafeDerefInt32(volume.Size),
				VolumeType:       string(volume.VolumeType),
				Encrypted:        utils.SafeDerefBool(volume.Encrypted),
				AvailabilityZone: aws.ToString(volume.AvailabilityZone),
			})
		}
	}

	return volumes, nil
}

// CreateSnapshot starts a snapshot of the volume and returns its ID.
// It does not wait for the snapshot to complete.
func (c *Client) CreateSnapshot(ctx context.Context, volumeID, description string) (string, error) {
	out, err := c.api.CreateSnapshot(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    aws.String(volumeID),
		Description: aws.String(description),
	})
	if err != nil {
		return "", ClassifyAWSError(err, VolumeResourceType, volumeID, "error creating snapshot")
	}
	return aws.ToString(out.SnapshotId), nil
}
