package formatter

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/younsl/shotty/internal/models"
)

// PrintVolumes prints volumes in the requested format. Cost columns are
// only shown when showCost is set.
func PrintVolumes(w io.Writer, volumes []models.VolumeInfo, format Format, showCost bool) {
	if format == FormatPlain {
		for _, volume := range volumes {
			fields := []string{
				volume.VolumeID,
				volume.InstanceID,
				volume.State,
				fmt.Sprintf("%dGiB", volume.Size),
				volume.EncryptionLabel(),
			}
			if showCost {
				fields = append(fields, formatCost(volume))
			}
			plainLine(w, fields...)
		}
		return
	}

	PrintVolumesTable(w, volumes, showCost)
	PrintVolumesSummary(w, volumes, showCost)
}

// PrintVolumesTable prints a formatted table of attached EBS volumes
func PrintVolumesTable(w io.Writer, volumes []models.VolumeInfo, showCost bool) {
	if len(volumes) == 0 {
		fmt.Fprintln(w, "No volumes found.")
		return
	}

	// kubectl 스타일 tabwriter 설정
	tw := newTabWriter(w)

	if showCost {
		fmt.Fprintln(tw, "VOLUME ID\tINSTANCE ID\tSTATE\tSIZE\tTYPE\tENCRYPTION\tCOST/MO\tPRICING")
	} else {
		fmt.Fprintln(tw, "VOLUME ID\tINSTANCE ID\tSTATE\tSIZE\tTYPE\tENCRYPTION")
	}

	for _, volume := range volumes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s",
			volume.VolumeID,
			volume.InstanceID,
			volume.State,
			FormatGiB(volume.Size),
			volume.VolumeType,
			volume.EncryptionLabel(),
		)
		if showCost {
			fmt.Fprintf(tw, "\t%s\t%s", formatCost(volume), GetPricingMarker(volume.PricingSource))
		}
		fmt.Fprintln(tw)
	}

	printVolumeTotals(tw, volumes, showCost)

	tw.Flush()
}

// FormatGiB renders a size given in GiB, e.g. "8.0 GiB"
func FormatGiB(sizeGiB int) string {
	if sizeGiB <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(sizeGiB) << 30)
}

func formatCost(volume models.VolumeInfo) string {
	if volume.PricingSource == "" || volume.PricingSource == "N/A" {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", volume.EstimatedMonthlyCost)
}

// printVolumeTotals prints the summary information at the bottom of the table
func printVolumeTotals(w io.Writer, volumes []models.VolumeInfo, showCost bool) {
	totalSize := 0
	var totalCost float64

	for _, volume := range volumes {
		totalSize += volume.Size
		totalCost += volume.EstimatedMonthlyCost
	}

	if showCost {
		fmt.Fprintf(w, "Total:\t\t\t%s\t\t\t$%.2f\t\n", FormatGiB(totalSize), totalCost)
		return
	}
	fmt.Fprintf(w, "Total:\t\t\t%s\t\t\n", FormatGiB(totalSize))
}

// PrintVolumesSummary displays volume counts grouped by volume type
func PrintVolumesSummary(w io.Writer, volumes []models.VolumeInfo, showCost bool) {
	if len(volumes) == 0 {
		return
	}

	volumeTypes := make(map[string]struct {
		count     int
		size      int
		encrypted int
		cost      float64
	})

	for _, volume := range volumes {
		typeInfo := volumeTypes[volume.VolumeType]
		typeInfo.count++
		typeInfo.size += volume.Size
		typeInfo.cost += volume.EstimatedMonthlyCost
		if volume.Encrypted {
			typeInfo.encrypted++
		}
		volumeTypes[volume.VolumeType] = typeInfo
	}

	fmt.Fprintln(w, "\n## EBS Volumes Summary")

	tw := newTabWriter(w)

	if showCost {
		fmt.Fprintln(tw, "VOLUME TYPE\tCOUNT\tENCRYPTED\tTOTAL SIZE\tMONTHLY COST")
	} else {
		fmt.Fprintln(tw, "VOLUME TYPE\tCOUNT\tENCRYPTED\tTOTAL SIZE")
	}

	// Sort volume types for consistent output
	types := make([]string, 0, len(volumeTypes))
	for volumeType := range volumeTypes {
		types = append(types, volumeType)
	}
	sort.Strings(types)

	for _, volumeType := range types {
		info := volumeTypes[volumeType]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s", volumeType, info.count, info.encrypted, FormatGiB(info.size))
		if showCost {
			fmt.Fprintf(tw, "\t$%.2f", info.cost)
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

// GetPricingMarker returns a suitable marker for the pricing source
func GetPricingMarker(source string) string {
	switch source {
	case "API":
		return "API"
	case "Cache":
		return "CACHE"
	case "Default":
		return "DEFAULT"
	case "N/A":
		return "N/A"
	default:
		return "-"
	}
}
