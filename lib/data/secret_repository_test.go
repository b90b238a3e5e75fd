package data

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type MockSecretsManagerClient struct {
	SecretString *string
	Err          error
	CallCount    int
}

func (m *MockSecretsManagerClient) GetSecretValue(ctx context.Context, input *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	m.CallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return &secretsmanager.GetSecretValueOutput{
		SecretString: m.SecretString,
	}, nil
}

func InitializeSecretRepository(mock *MockSecretsManagerClient) SecretRepository {
	return &SecretDao{
		SecretsManager: mock,
		Logger:         logrus.New(),
	}
}

func Test_GetSharedSecret_Success(t *testing.T) {
	//Arrange
	mock := &MockSecretsManagerClient{SecretString: String(`{"password":"Xx1!aaaa"}`)}
	secretRepository := InitializeSecretRepository(mock)

	//Act
	secret, err := secretRepository.GetSharedSecret(context.Background())

	//Assert
	assert.NoError(t, err)
	assert.Equal(t, "Xx1!aaaa", secret.Password)
}

func Test_GetSharedSecret_FetchFailure(t *testing.T) {
	//Arrange
	mock := &MockSecretsManagerClient{Err: errors.New("error in GetSecretValue")}
	secretRepository := InitializeSecretRepository(mock)

	//Act
	_, err := secretRepository.GetSharedSecret(context.Background())

	//Assert
	assert.ErrorContains(t, err, "error in GetSecretValue")
}

func Test_GetSharedSecret_NoStringValue(t *testing.T) {
	//Arrange
	mock := &MockSecretsManagerClient{}
	secretRepository := InitializeSecretRepository(mock)

	//Act
	_, err := secretRepository.GetSharedSecret(context.Background())

	//Assert
	assert.ErrorContains(t, err, "has no string value")
}

func Test_GetSharedSecret_InvalidJSON(t *testing.T) {
	//Arrange
	mock := &MockSecretsManagerClient{SecretString: String("not-json")}
	secretRepository := InitializeSecretRepository(mock)

	//Act
	_, err := secretRepository.GetSharedSecret(context.Background())

	//Assert
	assert.ErrorContains(t, err, "failed to decode")
}

func Test_GetSharedSecret_EmptyPassword(t *testing.T) {
	//Arrange
	mock := &MockSecretsManagerClient{SecretString: String(`{"password":""}`)}
	secretRepository := InitializeSecretRepository(mock)

	//Act
	_, err := secretRepository.GetSharedSecret(context.Background())

	//Assert
	assert.ErrorContains(t, err, "empty password field")
}
