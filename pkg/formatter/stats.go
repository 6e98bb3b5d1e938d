package formatter

import (
	"fmt"
	"io"
	"sort"

	"github.com/younsl/shotty/pkg/pricing"
)

// PrintPricingAPIStats prints the statistics of pricing API calls
func PrintPricingAPIStats(w io.Writer, stats map[string]pricing.Stats) {
	if len(stats) == 0 {
		return
	}

	fmt.Fprintln(w, "\n## AWS Pricing API Call Statistics")

	tw := newTabWriter(w)

	fmt.Fprintln(tw, "REGION\tAPI CALLS\tSUCCESS\tFAILURE\tCACHE HITS\tSUCCESS RATE")

	regions := make([]string, 0, len(stats))
	for region := range stats {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		s := stats[region]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f%%\n",
			region,
			s.Success+s.Failure,
			s.Success,
			s.Failure,
			s.Cache,
			s.SuccessRate(),
		)
	}

	tw.Flush()
}
