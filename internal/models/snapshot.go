package models

import "time"

// SnapshotInfo represents an EBS snapshot of a volume attached to an instance
type SnapshotInfo struct {
	SnapshotID  string
	VolumeID    string
	InstanceID  string
	State       string
	Progress    string // e.g. "100%"
	StartTime   time.Time
	VolumeSize  int // GiB
	Description string
}
