package formatter

import (
	"fmt"
	"io"

	"github.com/younsl/shotty/internal/models"
	"github.com/younsl/shotty/pkg/utils"
)

// PrintSnapshots prints snapshots in the requested format
func PrintSnapshots(w io.Writer, snapshots []models.SnapshotInfo, format Format) {
	if format == FormatPlain {
		for _, snapshot := range snapshots {
			plainLine(w,
				snapshot.SnapshotID,
				snapshot.VolumeID,
				snapshot.InstanceID,
				snapshot.State,
				snapshot.Progress,
				utils.FormatCtime(snapshot.StartTime),
			)
		}
		return
	}

	PrintSnapshotsTable(w, snapshots)
}

// PrintSnapshotsTable prints a formatted table of snapshots in API order
func PrintSnapshotsTable(w io.Writer, snapshots []models.SnapshotInfo) {
	if len(snapshots) == 0 {
		fmt.Fprintln(w, "No snapshots found.")
		return
	}

	tw := newTabWriter(w)

	fmt.Fprintln(tw, "SNAPSHOT ID\tVOLUME ID\tINSTANCE ID\tSTATE\tPROGRESS\tSTARTED\tAGE")

	for _, snapshot := range snapshots {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			snapshot.SnapshotID,
			snapshot.VolumeID,
			snapshot.InstanceID,
			snapshot.State,
			orDash(snapshot.Progress),
			utils.FormatCtime(snapshot.StartTime),
			utils.FormatTimeAgo(snapshot.StartTime),
		)
	}

	fmt.Fprintf(tw, "Total:\t%d\n", len(snapshots))

	tw.Flush()
}
