package pricing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/younsl/shotty/pkg/utils"
)

// VolumeMonthlyCost estimates the monthly cost of an EBS volume and reports
// where the per GB-month price came from.
func (e *Estimator) VolumeMonthlyCost(ctx context.Context, volumeType string, sizeGB int, region string) (float64, PricingSource) {
	price, source := e.ebsPrice(ctx, volumeType, region)
	if source == PricingSourceNA {
		return 0, source
	}
	return float64(sizeGB) * price, source
}

func (e *Estimator) ebsPrice(ctx context.Context, volumeType, region string) (float64, PricingSource) {
	cacheKey := fmt.Sprintf("ebs:%s:%s", volumeType, region)

	e.mu.Lock()
	if price, found := e.cache[cacheKey]; found {
		e.recordCacheHit(region)
		e.mu.Unlock()
		return price, PricingSourceCache
	}
	e.mu.Unlock()

	price, err := e.getEBSPriceFromAPI(ctx, volumeType, region)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err == nil {
		e.recordSuccess(region)
		e.cache[cacheKey] = price
		return price, PricingSourceAPI
	}

	e.recordFailure(region)
	e.logger.Debug("using fallback EBS pricing", "type", volumeType, "region", region, "err", err)

	if price, ok := defaultEBSPrice(volumeType, region); ok {
		return price, PricingSourceDefault
	}
	return 0, PricingSourceNA
}

// getEBSPriceFromAPI retrieves EBS volume pricing from the AWS Pricing API
func (e *Estimator) getEBSPriceFromAPI(ctx context.Context, volumeType, region string) (float64, error) {
	filters := []types.Filter{
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("volumeApiName"),
			Value: aws.String(volumeType),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("productFamily"),
			Value: aws.String("Storage"),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("regionCode"),
			Value: aws.String(region),
		},
	}

	products, err := e.getPricingProducts(ctx, "AmazonEC2", filters)
	if err != nil {
		return 0, err
	}

	// Several products can share the filters; pick the exact volume type
	for _, product := range products {
		priceData, err := utils.ParseJSON(product)
		if err != nil {
			continue
		}

		attributes, err := utils.GetNestedMap(priceData, "product", "attributes")
		if err != nil {
			continue
		}

		if volAPIName, ok := attributes["volumeApiName"].(string); ok && volAPIName == volumeType {
			return extractEBSPrice(priceData)
		}
	}

	return 0, fmt.Errorf("no exact match found for EBS volume type %s in region %s (%s)",
		volumeType, region, utils.GetRegionDescriptiveName(region))
}

// extractEBSPrice extracts the price per GB-month from the EBS pricing data
func extractEBSPrice(priceData map[string]interface{}) (float64, error) {
	onDemand, err := utils.GetNestedMap(priceData, "terms", "OnDemand")
	if err != nil {
		return 0, fmt.Errorf("OnDemand terms not found: %w", err)
	}

	skuOffer, err := utils.GetFirstMapValue(onDemand)
	if err != nil {
		return 0, fmt.Errorf("no SKU offer found")
	}

	skuOfferMap, ok := skuOffer.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("SKU offer is not a map")
	}

	priceDimensions, err := utils.GetNestedMap(skuOfferMap, "priceDimensions")
	if err != nil {
		return 0, fmt.Errorf("priceDimensions field not found or invalid")
	}

	dimension, err := utils.GetFirstMapValue(priceDimensions)
	if err != nil {
		return 0, fmt.Errorf("no price dimension found")
	}

	dimensionMap, ok := dimension.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("price dimension is not a map")
	}

	// Check that this is a per GB-month price
	unit, ok := dimensionMap["unit"].(string)
	if !ok || (unit != "GB-Mo" && unit != "GB-month") {
		return 0, fmt.Errorf("unexpected pricing unit: %s", unit)
	}

	pricePerUnit, err := utils.GetNestedMap(dimensionMap, "pricePerUnit")
	if err != nil {
		return 0, fmt.Errorf("pricePerUnit field not found or invalid")
	}

	usd, ok := pricePerUnit["USD"].(string)
	if !ok {
		return 0, fmt.Errorf("USD price not found or invalid")
	}

	price, err := strconv.ParseFloat(usd, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing price: %w", err)
	}

	return price, nil
}
