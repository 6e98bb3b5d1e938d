package models

import "time"

// NoProject is shown for instances without a Project tag
const NoProject = "<no project>"

// InstanceInfo represents EC2 instance information
type InstanceInfo struct {
	InstanceID       string
	Name             string
	InstanceType     string
	AvailabilityZone string
	State            string
	PublicDNSName    string
	Project          string // "" when the instance has no Project tag
	LaunchTime       *time.Time
	Tags             map[string]string
}

// ProjectOrDefault returns the Project tag value or NoProject
func (i InstanceInfo) ProjectOrDefault() string {
	if i.Project == "" {
		return NoProject
	}
	return i.Project
}
