package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/pricing"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PLAIN")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	f, err = ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("json")
	assert.ErrorContains(t, err, `unknown output format "json"`)
}

func TestPrintInstancesPlain(t *testing.T) {
	var buf bytes.Buffer
	PrintInstances(&buf, []models.InstanceInfo{
		{
			InstanceID:       "i-1",
			InstanceType:     "t3.micro",
			AvailabilityZone: "us-east-1a",
			State:            "running",
			PublicDNSName:    "ec2-1.compute.amazonaws.com",
			Project:          "alpha",
		},
		{
			InstanceID:       "i-2",
			InstanceType:     "t3.small",
			AvailabilityZone: "us-east-1b",
			State:            "stopped",
		},
	}, FormatPlain)

	assert.Equal(t,
		"i-1, t3.micro, us-east-1a, running, ec2-1.compute.amazonaws.com, alpha\n"+
			"i-2, t3.small, us-east-1b, stopped, , <no project>\n",
		buf.String())
}

func TestPrintInstancesTable(t *testing.T) {
	var buf bytes.Buffer
	PrintInstances(&buf, []models.InstanceInfo{
		{InstanceID: "i-1", InstanceType: "t3.micro", State: "running"},
		{InstanceID: "i-2", InstanceType: "t3.micro", State: "running", Name: "web"},
	}, FormatTable)

	out := buf.String()
	assert.Contains(t, out, "INSTANCE ID")
	assert.Contains(t, out, "<unnamed>")
	assert.Contains(t, out, "## EC2 Instances Summary")
	assert.Regexp(t, `running\s+2`, out)
	assert.Regexp(t, `Total:\s+2`, out)
}

func TestPrintInstancesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintInstances(&buf, nil, FormatTable)
	assert.Equal(t, "No instances found.\n", buf.String())

	buf.Reset()
	PrintInstances(&buf, nil, FormatPlain)
	assert.Empty(t, buf.String())
}

func TestPrintVolumesPlain(t *testing.T) {
	volumes := []models.VolumeInfo{
		{VolumeID: "vol-1", InstanceID: "i-1", State: "in-use", Size: 8, Encrypted: true},
		{VolumeID: "vol-2", InstanceID: "i-1", State: "in-use", Size: 100,
			EstimatedMonthlyCost: 8, PricingSource: string(pricing.PricingSourceAPI)},
	}

	var buf bytes.Buffer
	PrintVolumes(&buf, volumes, FormatPlain, false)
	assert.Equal(t,
		"vol-1, i-1, in-use, 8GiB, Encrypted\n"+
			"vol-2, i-1, in-use, 100GiB, Not encrypted\n",
		buf.String())

	buf.Reset()
	PrintVolumes(&buf, volumes, FormatPlain, true)
	assert.Equal(t,
		"vol-1, i-1, in-use, 8GiB, Encrypted, N/A\n"+
			"vol-2, i-1, in-use, 100GiB, Not encrypted, $8.00\n",
		buf.String())
}

func TestPrintVolumesTableWithCost(t *testing.T) {
	var buf bytes.Buffer
	PrintVolumes(&buf, []models.VolumeInfo{
		{VolumeID: "vol-1", VolumeType: "gp3", Size: 8, EstimatedMonthlyCost: 0.64, PricingSource: "Default"},
		{VolumeID: "vol-2", VolumeType: "gp3", Size: 8, Encrypted: true, EstimatedMonthlyCost: 0.64, PricingSource: "Cache"},
	}, FormatTable, true)

	out := buf.String()
	assert.Contains(t, out, "COST/MO")
	assert.Contains(t, out, "DEFAULT")
	assert.Contains(t, out, "CACHE")
	assert.Contains(t, out, "16 GiB")
	assert.Contains(t, out, "$1.28")
	assert.Contains(t, out, "## EBS Volumes Summary")
}

func TestPrintSnapshotsPlain(t *testing.T) {
	start := time.Date(2024, time.March, 5, 9, 4, 7, 0, time.Local)

	var buf bytes.Buffer
	PrintSnapshots(&buf, []models.SnapshotInfo{
		{SnapshotID: "snap-1", VolumeID: "vol-1", InstanceID: "i-1", State: "completed", Progress: "100%", StartTime: start},
	}, FormatPlain)

	assert.Equal(t, "snap-1, vol-1, i-1, completed, 100%, Tue Mar  5 09:04:07 2024\n", buf.String())
}

func TestPrintSnapshotsTable(t *testing.T) {
	var buf bytes.Buffer
	PrintSnapshots(&buf, []models.SnapshotInfo{
		{SnapshotID: "snap-1", State: "pending", StartTime: time.Now().Add(-2 * time.Hour)},
	}, FormatTable)

	out := buf.String()
	assert.Contains(t, out, "SNAPSHOT ID")
	assert.Contains(t, out, "2 hours ago")
	assert.Regexp(t, `Total:\s+1`, out)
}

func TestPrintPricingAPIStats(t *testing.T) {
	var buf bytes.Buffer
	PrintPricingAPIStats(&buf, map[string]pricing.Stats{
		"us-east-1": {Success: 3, Failure: 1, Cache: 4},
	})

	out := buf.String()
	assert.Contains(t, out, "## AWS Pricing API Call Statistics")
	assert.Regexp(t, `us-east-1\s+4\s+3\s+1\s+4\s+75\.0%`, out)

	buf.Reset()
	PrintPricingAPIStats(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestFormatGiB(t *testing.T) {
	assert.Equal(t, "8.0 GiB", FormatGiB(8))
	assert.Equal(t, "100 GiB", FormatGiB(100))
	assert.Equal(t, "0 B", FormatGiB(0))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", MaxNameWidth))
	assert.Equal(t, "abcdefgh..", TruncateName("abcdefghijklmnop", 10))
	assert.Equal(t, "한글..", TruncateName("한글한글한글", 6))
}
