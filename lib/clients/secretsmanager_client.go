package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func NewSecretsManagerClient(isLocal bool) *secretsmanager.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(resolveRegion()),
	)
	if err != nil {
		panic(err)
	}

	if isLocal {
		cfg.BaseEndpoint = aws.String("http://docker.for.mac.host.internal:4566")
	}

	return secretsmanager.NewFromConfig(cfg)
}
