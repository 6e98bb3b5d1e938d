package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/utils"
)

// ListSnapshots returns the snapshots taken of the given volume
func (c *Client) ListSnapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error) {
	input := &ec2.DescribeSnapshotsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("volume-id"),
				Values: []string{volumeID},
			},
		},
	}

	snapshots := []models.SnapshotInfo{}

	paginator := ec2.NewDescribeSnapshotsPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(err, VolumeResourceType, volumeID, "error querying EBS snapshots")
		}

		for _, snapshot := range page.Snapshots {
			snapshots = append(snapshots, models.SnapshotInfo{
				SnapshotID:  aws.ToString(snapshot.SnapshotId),
				VolumeID:    volumeID,
				State:       string(snapshot.State),
				Progress:    aws.ToString(snapshot.Progress),
				StartTime:   aws.ToTime(snapshot.StartTime),
				VolumeSize:  utils.SafeDerefInt32(snapshot.VolumeSize),
				Description: aws.ToString(snapshot.Description),
			})
		}
	}

	return snapshots, nil
}
