// Package awsconf loads AWS SDK configuration for a resolved Snapshot.
package awsconf

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/awslabs/aws-api-mcp-config/internal/conf"
)

// LoadOptions returns the SDK options implied by s. Absent values add no
// option, leaving the SDK's own resolution in charge.
func LoadOptions(s conf.Snapshot) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if region, ok := s.Region(); ok && region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile, ok := s.Profile(); ok && profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	return opts
}

// Load resolves an aws.Config for s. Credentials are not retrieved.
func Load(ctx context.Context, s conf.Snapshot) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, LoadOptions(s)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
