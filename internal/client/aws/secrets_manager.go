package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/cyphera/tax-calculator/internal/codec"
	"github.com/cyphera/tax-calculator/internal/logger"
)

// SecretValueGetter is the part of the Secrets Manager API used here
type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc       SecretValueGetter
	converter *codec.JSONConverter
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI creates a client around an existing Secrets Manager API
func NewSecretsManagerClientWithAPI(svc SecretValueGetter) *SecretsManagerClient {
	return &SecretsManagerClient{
		svc:       svc,
		converter: codec.NewJSONConverter(),
	}
}

// GetSecretString fetches a secret using the ARN held in secretArnEnvVar and falls back to
// the value of fallbackEnvVar when the ARN is unset or the fetch fails.
// Secrets stored as a JSON object with a single key resolve to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar), zap.String("secretArn", secretArn))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result != nil && result.SecretString != nil && *result.SecretString != "" {
			return c.unwrapSecret(secretArn, *result.SecretString), nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArn", secretArn),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		logger.Log.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	secretValue := os.Getenv(fallbackEnvVar)
	if secretValue != "" {
		logger.Log.Info("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	logger.Log.Error("Failed to retrieve secret from both Secrets Manager and direct environment variable",
		zap.String("arnEnvVar", secretArnEnvVar),
		zap.String("fallbackEnvVar", fallbackEnvVar),
	)
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) unwrapSecret(secretArn, secret string) string {
	var secretJSON map[string]string
	if err := c.converter.Deserialize(secret, &secretJSON); err != nil {
		logger.Log.Info("Fetched secret from Secrets Manager (plain text)", zap.String("secretArn", secretArn))
		return secret
	}

	if len(secretJSON) == 1 {
		for key, value := range secretJSON {
			logger.Log.Info("Fetched secret from Secrets Manager (single-key JSON)",
				zap.String("secretArn", secretArn),
				zap.String("jsonKey", key),
			)
			return value
		}
	}

	logger.Log.Warn("Fetched secret was JSON but not single-key format, returning raw JSON string",
		zap.String("secretArn", secretArn),
		zap.Int("keyCount", len(secretJSON)),
	)
	return secret
}
