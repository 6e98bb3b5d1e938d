package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/charmbracelet/log"
)

// The AWS Pricing API is only available in us-east-1 and ap-south-1
const pricingRegion = "us-east-1"

// apiTimeout bounds a single GetProducts call
const apiTimeout = 5 * time.Second

// ProductsAPI is the subset of the Pricing client used here
type ProductsAPI interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

// Estimator looks up EBS prices through the Pricing API, caching results
// and falling back to built-in prices when the API is unavailable.
// It is safe for concurrent use.
type Estimator struct {
	client ProductsAPI
	logger *log.Logger

	mu    sync.RWMutex
	cache map[string]float64
	stats map[string]Stats
}

// NewEstimatorFromConfig creates an Estimator using the credentials of cfg.
// The Pricing endpoint region is fixed regardless of cfg.Region.
func NewEstimatorFromConfig(cfg aws.Config, logger *log.Logger) *Estimator {
	pricingCfg := cfg.Copy()
	pricingCfg.Region = pricingRegion
	return NewEstimator(pricing.NewFromConfig(pricingCfg), logger)
}

// NewEstimator creates an Estimator with a provided client. A nil client
// makes every lookup use the fallback prices.
func NewEstimator(client ProductsAPI, logger *log.Logger) *Estimator {
	if logger == nil {
		logger = log.Default()
	}
	return &Estimator{
		client: client,
		logger: logger,
		cache:  make(map[string]float64),
		stats:  make(map[string]Stats),
	}
}

// getPricingProducts gets multiple pricing products from AWS API
func (e *Estimator) getPricingProducts(ctx context.Context, serviceCode string, filters []types.Filter) ([]string, error) {
	if e.client == nil {
		return nil, fmt.Errorf("AWS pricing client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	resp, err := e.client.GetProducts(ctx, &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     filters,
		MaxResults:  aws.Int32(100),
	})
	if err != nil {
		return nil, fmt.Errorf("error calling AWS Pricing API: %w", err)
	}

	if len(resp.PriceList) == 0 {
		return nil, fmt.Errorf("no pricing products found for %s", serviceCode)
	}

	return resp.PriceList, nil
}
