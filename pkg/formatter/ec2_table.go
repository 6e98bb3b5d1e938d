package formatter

import (
	"fmt"
	"io"
	"sort"

	"github.com/younsl/shotty/internal/models"
)

// PrintInstances prints instances in the requested format
func PrintInstances(w io.Writer, instances []models.InstanceInfo, format Format) {
	if format == FormatPlain {
		for _, instance := range instances {
			plainLine(w,
				instance.InstanceID,
				instance.InstanceType,
				instance.AvailabilityZone,
				instance.State,
				instance.PublicDNSName,
				instance.ProjectOrDefault(),
			)
		}
		return
	}

	PrintInstancesTable(w, instances)
	PrintInstancesSummary(w, instances)
}

// PrintInstancesTable prints a formatted table of EC2 instances in API order
func PrintInstancesTable(w io.Writer, instances []models.InstanceInfo) {
	if len(instances) == 0 {
		fmt.Fprintln(w, "No instances found.")
		return
	}

	// kubectl 스타일 tabwriter 설정
	tw := newTabWriter(w)

	fmt.Fprintln(tw, "INSTANCE ID\tNAME\tTYPE\tZONE\tSTATE\tPUBLIC DNS\tPROJECT")

	for _, instance := range instances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			instance.InstanceID,
			getInstanceName(instance.Name),
			instance.InstanceType,
			instance.AvailabilityZone,
			instance.State,
			orDash(instance.PublicDNSName),
			instance.ProjectOrDefault(),
		)
	}

	tw.Flush()
}

// getInstanceName returns a formatted instance name or <unnamed> if empty
func getInstanceName(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return TruncateName(name, MaxNameWidth)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintInstancesSummary displays the instance count per state
func PrintInstancesSummary(w io.Writer, instances []models.InstanceInfo) {
	if len(instances) == 0 {
		return
	}

	states := make(map[string]int)
	for _, instance := range instances {
		states[instance.State]++
	}

	fmt.Fprintln(w, "\n## EC2 Instances Summary")

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "STATE\tINSTANCE COUNT")

	// Sort states for consistent output
	keys := make([]string, 0, len(states))
	for state := range states {
		keys = append(keys, state)
	}
	sort.Strings(keys)

	for _, state := range keys {
		fmt.Fprintf(tw, "%s\t%d\n", state, states[state])
	}
	fmt.Fprintf(tw, "Total:\t%d\n", len(instances))

	tw.Flush()
}
