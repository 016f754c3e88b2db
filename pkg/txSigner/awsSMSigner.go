package txSigner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// AWSSMSignerConfig locates a hex encoded private key stored in AWS Secrets Manager.
type AWSSMSignerConfig struct {
	// Region specifies the AWS region where the secret is stored
	Region string
	// SecretName is the name or ARN of the secret holding the private key
	SecretName string
}

// NewAWSSMSigner loads the private key from AWS Secrets Manager once and
// signs locally with it.
func NewAWSSMSigner(ctx context.Context, config *AWSSMSignerConfig) (*PrivateKeySigner, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewAWSSMSignerWithClient(ctx, secretsmanager.New(sess), config.SecretName)
}

// NewAWSSMSignerWithClient is NewAWSSMSigner with an injected Secrets Manager client.
func NewAWSSMSignerWithClient(ctx context.Context, client secretsmanageriface.SecretsManagerAPI, secretName string) (*PrivateKeySigner, error) {
	result, err := client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", secretName, err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", secretName)
	}
	signer, err := NewPrivateKeySigner(*result.SecretString)
	if err != nil {
		return nil, fmt.Errorf("secret %s: %w", secretName, err)
	}
	return signer, nil
}
