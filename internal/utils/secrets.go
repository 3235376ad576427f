package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretValue represents the structure of the OpenAI credential in Secrets Manager
type SecretValue struct {
	APIKey string `json:"apiKey"`
}

var (
	// Cache for the API key to avoid repeated Secrets Manager calls
	cachedAPIKey   string
	keyCache       sync.RWMutex
	keyLastFetched time.Time
	keyTTL         = 5 * time.Minute
	secretsClient  *secretsmanager.Client
	initOnce       sync.Once
)

// initSecretsManager initializes the AWS Secrets Manager client
func initSecretsManager() {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		fmt.Printf("Error loading AWS config: %v\n", err)
		return
	}
	secretsClient = secretsmanager.NewFromConfig(cfg)
}

// ResolveOpenAIAPIKey resolves the OpenAI API key at invocation time.
// The OPENAI_API_KEY environment variable wins; otherwise the key is
// fetched from Secrets Manager (OPENAI_API_KEY_SECRET_ARN) and cached.
func ResolveOpenAIAPIKey(ctx context.Context) (string, error) {
	// Environment variable is read through on every call so rotated
	// deployments take effect immediately
	if envKey := os.Getenv("OPENAI_API_KEY"); envKey != "" {
		return envKey, nil
	}

	keyCache.RLock()
	if cachedAPIKey != "" && time.Since(keyLastFetched) < keyTTL {
		key := cachedAPIKey
		keyCache.RUnlock()
		return key, nil
	}
	keyCache.RUnlock()

	secretArn := os.Getenv("OPENAI_API_KEY_SECRET_ARN")
	if secretArn == "" {
		return "", fmt.Errorf("neither OPENAI_API_KEY nor OPENAI_API_KEY_SECRET_ARN is set")
	}

	initOnce.Do(initSecretsManager)
	if secretsClient == nil {
		return "", fmt.Errorf("secrets manager client not initialized")
	}

	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	}

	result, err := secretsClient.GetSecretValue(ctx, input)
	if err != nil {
		return "", fmt.Errorf("error fetching API key from Secrets Manager: %v", err)
	}

	var secretValue SecretValue
	if err := json.Unmarshal([]byte(*result.SecretString), &secretValue); err != nil {
		return "", fmt.Errorf("error parsing secret value: %v", err)
	}

	if secretValue.APIKey == "" {
		return "", fmt.Errorf("apiKey not found in secret")
	}

	keyCache.Lock()
	cachedAPIKey = secretValue.APIKey
	keyLastFetched = time.Now()
	keyCache.Unlock()

	return secretValue.APIKey, nil
}
