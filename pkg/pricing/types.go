package pricing

// PricingSource represents the source of pricing information
type PricingSource string

const (
	// PricingSourceAPI indicates pricing data came from AWS API
	PricingSourceAPI PricingSource = "API"

	// PricingSourceCache indicates pricing data came from cache
	PricingSourceCache PricingSource = "Cache"

	// PricingSourceDefault indicates pricing data came from hardcoded defaults
	PricingSourceDefault PricingSource = "Default"

	// PricingSourceNA indicates pricing data is not available
	PricingSourceNA PricingSource = "N/A"
)

// Default EBS volume prices in USD per GB-month
// These are fallback prices if Pricing API fails
var DefaultEBSPrices = map[string]map[string]float64{
	"us-east-1": { // US East (N. Virginia)
		"gp2":      0.10,
		"gp3":      0.08,
		"io1":      0.125,
		"io2":      0.125,
		"st1":      0.045,
		"sc1":      0.015,
		"standard": 0.05,
	},
	"ap-northeast-2": { // Asia Pacific (Seoul)
		"gp2":      0.114,
		"gp3":      0.0912,
		"io1":      0.1278,
		"io2":      0.1278,
		"st1":      0.051,
		"sc1":      0.029,
		"standard": 0.08,
	},
	"eu-west-1": { // EU (Ireland)
		"gp2":      0.11,
		"gp3":      0.088,
		"io1":      0.138,
		"io2":      0.138,
		"st1":      0.05,
		"sc1":      0.0168,
		"standard": 0.055,
	},
}

// defaultEBSPrice returns the fallback price for a volume type. Unknown
// regions use us-east-1 prices and unknown types use gp2 prices.
func defaultEBSPrice(volumeType, region string) (float64, bool) {
	regionPrices, found := DefaultEBSPrices[region]
	if !found {
		regionPrices = DefaultEBSPrices["us-east-1"]
	}
	if price, found := regionPrices[volumeType]; found {
		return price, true
	}
	if price, found := regionPrices["gp2"]; found {
		return price, true
	}
	return 0, false
}
