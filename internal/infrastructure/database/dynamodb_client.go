package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cockroachdb/errors"
)

type DynamoDBSettings struct {
	Region string
	// Endpoint points the client at DynamoDB Local (e.g. http://dynamodb:8000).
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client.
//
// Against a local endpoint static dummy credentials are used: DynamoDB Local
// does not validate them, but the SDK requires some.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s.Region),
	}
	if s.Endpoint != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}
