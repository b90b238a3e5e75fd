package data

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// LookupStatus is the tri-state outcome of a contact email lookup
type LookupStatus int

const (
	StatusFound LookupStatus = iota
	StatusNotFound
	StatusQueryFailed
)

// LookupResult reports a parameter lookup. Value is set only for StatusFound;
// Err is set only for StatusQueryFailed. Callers render NotFound and
// QueryFailed identically, but QueryFailed keeps its cause for diagnostics.
type LookupResult struct {
	Status LookupStatus
	Value  string
	Err    error
}

type MetadataRepository interface {
	Lookup(ctx context.Context, parameterPath string) LookupResult
}

type MetadataClientInterface interface {
	DescribeParameters(ctx context.Context, params *ssm.DescribeParametersInput, optFns ...func(*ssm.Options)) (*ssm.DescribeParametersOutput, error)
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type MetadataDao struct {
	SSM    MetadataClientInterface
	Logger *logrus.Logger
}

// Lookup resolves an optional contact email from Parameter Store. It checks
// existence before fetching because a missing parameter surfaces as a plain
// "no matches" at the describe stage but as a ParameterNotFound fault at the
// get stage, and a missing email must never abort the invocation. Every AWS
// failure collapses to StatusQueryFailed; this method never returns an error.
// At most one describe and one get per call, no retries.
func (dao *MetadataDao) Lookup(ctx context.Context, parameterPath string) LookupResult {
	describeInput := &ssm.DescribeParametersInput{
		ParameterFilters: []types.ParameterStringFilter{
			{
				Key:    aws.String("Name"),
				Values: []string{parameterPath},
			},
		},
	}

	described, err := dao.SSM.DescribeParameters(ctx, describeInput)
	if err != nil {
		dao.logQueryFailure("DescribeParameters", parameterPath, err)
		return LookupResult{Status: StatusQueryFailed, Err: err}
	}

	if len(described.Parameters) == 0 {
		dao.Logger.WithFields(logrus.Fields{
			"operation": "Lookup",
			"parameter": parameterPath,
		}).Debug("Parameter does not exist, treating as no contact email")
		return LookupResult{Status: StatusNotFound}
	}

	getInput := &ssm.GetParameterInput{
		Name:           aws.String(parameterPath),
		WithDecryption: aws.Bool(true),
	}

	fetched, err := dao.SSM.GetParameter(ctx, getInput)
	if err != nil {
		// Deleted between describe and get, or a permission gap on
		// ssm:GetParameter only. Either way the invocation goes on.
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return LookupResult{Status: StatusNotFound}
		}
		dao.logQueryFailure("GetParameter", parameterPath, err)
		return LookupResult{Status: StatusQueryFailed, Err: err}
	}

	if fetched.Parameter == nil || fetched.Parameter.Value == nil {
		return LookupResult{Status: StatusNotFound}
	}

	return LookupResult{Status: StatusFound, Value: *fetched.Parameter.Value}
}

func (dao *MetadataDao) logQueryFailure(operation, parameterPath string, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"parameter": parameterPath,
		"error":     err.Error(),
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["error_code"] = apiErr.ErrorCode()
	}

	dao.Logger.WithFields(fields).Warn("Parameter lookup failed, treating as no contact email")
}
