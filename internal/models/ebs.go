package models

// VolumeInfo represents an EBS volume attached to an instance
type VolumeInfo struct {
	VolumeID             string
	InstanceID           string
	State                string
	Size                 int // GiB
	VolumeType           string
	Encrypted            bool
	AvailabilityZone     string
	EstimatedMonthlyCost float64
	PricingSource        string // "API", "Cache", "Default", "N/A", or "" when not priced
}

// EncryptionLabel returns the human readable encryption status
func (v VolumeInfo) EncryptionLabel() string {
	if v.Encrypted {
		return "Encrypted"
	}
	return "Not encrypted"
}
