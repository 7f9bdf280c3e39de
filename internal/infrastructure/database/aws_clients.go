package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// ConnectS3 creates the S3 client used for fallback claim documents.
// S3_ENDPOINT (optional) points it at a local stack.
func ConnectS3() *s3.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Path-style addressing keeps local S3 stacks (minio, localstack) happy.
		o.UsePathStyle = os.Getenv("S3_ENDPOINT") != ""
	})
}

func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	ddbEndpoint := os.Getenv("DYNAMODB_ENDPOINT")
	s3Endpoint := os.Getenv("S3_ENDPOINT")

	// Local stacks do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if ddbEndpoint != "" || s3Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			switch {
			case service == dynamodb.ServiceID && ddbEndpoint != "":
				return aws.Endpoint{URL: ddbEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
			case service == s3.ServiceID && s3Endpoint != "":
				return aws.Endpoint{URL: s3Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
