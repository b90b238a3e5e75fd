package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"

	"provisioning/lib/constants"
	"provisioning/lib/models"
)

type SecretRepository interface {
	GetSharedSecret(ctx context.Context) (models.SharedSecret, error)
}

type SecretsManagerClientInterface interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretDao struct {
	SecretsManager SecretsManagerClientInterface
	Logger         *logrus.Logger
}

// GetSharedSecret fetches and decodes the shared temporary password. The
// secret id is fixed per deployment, never per user. Unlike contact email
// lookups, any failure here is fatal for the invocation - the password is the
// primary payload of the notification, so there is no proceed-without-it path.
func (dao *SecretDao) GetSharedSecret(ctx context.Context) (models.SharedSecret, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(constants.SHARED_PASSWORD_SECRET_ID),
	}

	output, err := dao.SecretsManager.GetSecretValue(ctx, input)
	if err != nil {
		return models.SharedSecret{}, fmt.Errorf("failed to get shared password secret: %w", err)
	}

	if output.SecretString == nil {
		return models.SharedSecret{}, fmt.Errorf("shared password secret %s has no string value", constants.SHARED_PASSWORD_SECRET_ID)
	}

	var secret models.SharedSecret
	if err := json.Unmarshal([]byte(*output.SecretString), &secret); err != nil {
		return models.SharedSecret{}, fmt.Errorf("failed to decode shared password secret: %w", err)
	}

	if secret.Password == "" {
		return models.SharedSecret{}, fmt.Errorf("shared password secret %s has an empty password field", constants.SHARED_PASSWORD_SECRET_ID)
	}

	dao.Logger.WithField("operation", "GetSharedSecret").Debug("Retrieved shared temporary password")
	return secret, nil
}
