package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/younsl/shotty/pkg/utils"
)

// Options controls how the shared AWS configuration is loaded
type Options struct {
	// Profile is the shared config profile. Empty uses the default chain.
	Profile string
	// Region overrides the profile/environment region when set.
	Region string
}

// LoadConfig loads the AWS SDK configuration for the given options.
// When no region can be resolved the default region is used.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, NewAWSError(ErrConfigurationError, "profile", opts.Profile,
			"error loading AWS config", err)
	}

	if cfg.Region == "" {
		cfg.Region = utils.GetDefaultRegion()
	}

	return cfg, nil
}

// Client wraps the EC2 API for instance, volume and snapshot operations
type Client struct {
	api    EC2API
	region string
}

// NewClientFromConfig creates a Client from an already loaded configuration
func NewClientFromConfig(cfg aws.Config) *Client {
	return NewClientWithAPI(ec2.NewFromConfig(cfg), cfg.Region)
}

// NewClientWithAPI creates a Client with a provided EC2 API implementation
func NewClientWithAPI(api EC2API, region string) *Client {
	return &Client{
		api:    api,
		region: region,
	}
}

// Region returns the region the client talks to
func (c *Client) Region() string {
	return c.region
}
