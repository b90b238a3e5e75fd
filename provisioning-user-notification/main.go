// Package main implements the user-creation notification Lambda.
//
// The function is triggered by the CloudTrail audit event emitted when the
// provisioning stack creates IAM users. Per invocation it:
// 1. Decodes the created-user records from the event detail
// 2. Fetches the shared temporary password from Secrets Manager (once)
// 3. Resolves each recognized user's optional contact email from SSM
// 4. Emits one report line per recognized user to the operational log
//
// Notification Semantics:
//   - Users without a configured email parameter path are skipped silently;
//     the audit trail also carries service accounts and other automation
//     this function does not manage
//   - A missing or unreadable contact email is normal: the report is still
//     emitted with an "unavailable" marker and the invocation continues
//   - A missing shared password is fatal: no reports are emitted and the
//     error propagates to the Lambda runtime, which owns retry and alerting
//
// The handler holds no state between invocations; reports are written to the
// log stream in event order and never persisted.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"provisioning/lib/clients"
	"provisioning/lib/constants"
	"provisioning/lib/data"
	"provisioning/lib/identity"
	"provisioning/lib/models"
	"provisioning/lib/util"
)

// Global variables for Lambda cold start optimization
var (
	logger             *logrus.Logger          // Structured logger for debugging
	isLocal            bool                    // Development/local execution flag
	metadataRepository data.MetadataRepository // SSM Parameter Store adapter for contact emails
	secretRepository   data.SecretRepository   // Secrets Manager adapter for the shared password
)

// Handler processes one user-creation audit event.
func Handler(ctx context.Context, event events.CloudWatchEvent) error {
	correlationID := uuid.New().String()

	detail, err := extractCreationDetail(event)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"source":         event.Source,
			"operation":      "Handler",
			"error":          err.Error(),
		}).Error("Failed to extract user records from creation event")
		return err
	}

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"record_count":   len(detail.Records),
		"operation":      "Handler",
	}).Debug("Processing user-creation event")

	return processEvent(ctx, correlationID, detail, secretRepository, metadataRepository, logger)
}

// processEvent runs the notification pipeline. It takes its collaborators as
// parameters so tests can drive it without Lambda wiring or live AWS clients.
func processEvent(ctx context.Context, correlationID string, detail models.UserCreationDetail, secrets data.SecretRepository, metadata data.MetadataRepository, logger *logrus.Logger) error {
	// The password is the primary payload: fetch it before touching any
	// record so a failure aborts the invocation with zero reports emitted.
	secret, err := secrets.GetSharedSecret(ctx)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "processEvent",
			"error":          err.Error(),
		}).Error("Failed to retrieve shared temporary password, aborting invocation")
		return err
	}

	for _, record := range detail.Records {
		parameterPath, known := identity.Resolve(record.Name)
		if !known {
			logger.WithFields(logrus.Fields{
				"correlation_id": correlationID,
				"user_name":      record.Name,
				"operation":      "processEvent",
			}).Debug("Skipping user with no configured email parameter")
			continue
		}

		result := metadata.Lookup(ctx, parameterPath)
		report := models.UserReport{
			UserName: record.Name,
			Email:    util.ConditionalString(result.Status == data.StatusFound, result.Value, constants.EMAIL_UNAVAILABLE),
			Password: secret.Password,
		}
		emitReport(correlationID, report, logger)
	}

	return nil
}

// emitReport writes one notification line for a provisioned user.
func emitReport(correlationID string, report models.UserReport, logger *logrus.Logger) {
	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"user_name":      report.UserName,
		"email":          report.Email,
		"operation":      "emitReport",
	}).Info(fmt.Sprintf("Created user %s (email: %s), temporary password: %s", report.UserName, report.Email, report.Password))
}

// extractCreationDetail decodes the created-user records from the event detail
func extractCreationDetail(event events.CloudWatchEvent) (models.UserCreationDetail, error) {
	var detail models.UserCreationDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		return models.UserCreationDetail{}, fmt.Errorf("failed to decode event detail: %w", err)
	}
	return detail, nil
}

// main is the Lambda function entry point
func main() {
	lambda.Start(Handler)
}

func init() {
	isLocal = parseIsLocal()

	// Logger Setup
	logger = setupLogger(isLocal)

	// Initialize AWS adapters; clients are created once per cold start
	metadataRepository = &data.MetadataDao{
		SSM:    clients.NewSSMClient(isLocal),
		Logger: logger,
	}
	secretRepository = &data.SecretDao{
		SecretsManager: clients.NewSecretsManagerClient(isLocal),
		Logger:         logger,
	}

	logger.WithField("operation", "init").Info("User Notification Lambda initialization completed successfully")
}

func parseIsLocal() bool {
	isLocal, _ := strconv.ParseBool(os.Getenv("IS_LOCAL"))
	return isLocal
}

func setupLogger(isLocal bool) *logrus.Logger {
	logger := logrus.New()
	util.SetLogLevel(logger, os.Getenv("LOG_LEVEL"))
	logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: isLocal})
	return logger
}
