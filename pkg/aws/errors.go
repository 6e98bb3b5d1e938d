package aws

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for classifying EC2 API failures
const (
	// ErrResourceNotFound is returned when a requested AWS resource doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrPermissionDenied is returned when AWS API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrIncorrectState is returned when the resource cannot perform the action in its current state
	ErrIncorrectState ErrorCategory = "incorrect_state"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrServiceError is returned for any other error reported by the EC2 service
	ErrServiceError ErrorCategory = "service_error"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrCanceled is returned when the operation was canceled or timed out locally
	ErrCanceled ErrorCategory = "canceled"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Resource types used in error context
const (
	InstanceResourceType = "instance"
	VolumeResourceType   = "volume"
	SnapshotResourceType = "snapshot"
)

// Error represents an error that occurred during AWS operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// ResourceType identifies the AWS resource type (e.g., instance, volume)
	ResourceType string

	// ResourceID identifies the specific resource ID when applicable
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	var msg string
	switch {
	case e.ResourceID != "":
		msg = fmt.Sprintf("%s: %s [resource: %s/%s]", e.Category, e.Message, e.ResourceType, e.ResourceID)
	case e.ResourceType != "":
		msg = fmt.Sprintf("%s: %s [resource type: %s]", e.Category, e.Message, e.ResourceType)
	default:
		msg = fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewAWSError creates a new AWS error with the specified details
func NewAWSError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}
	return false
}

// IsAPIError reports whether err was returned by the EC2 service itself,
// as opposed to a transport, credential or cancellation failure.
func IsAPIError(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

// ErrorCode returns the service error code of err, or "" if it has none
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// ClassifyAWSError wraps err in an *Error whose category is derived from the
// EC2 error code, or from the failure kind for non-service errors.
// Reference: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
func ClassifyAWSError(err error, resourceType, resourceID, message string) *Error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return NewAWSError(categoryForCode(apiErr.ErrorCode()), resourceType, resourceID, message, err)
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return NewAWSError(ErrCanceled, resourceType, resourceID, message, err)

	case errors.As(err, &netErr):
		return NewAWSError(ErrNetworkError, resourceType, resourceID, message, err)

	case contains(err.Error(), "failed to retrieve credentials", "failed to refresh cached credentials",
		"failed to get shared config profile", "could not find region"):
		return NewAWSError(ErrConfigurationError, resourceType, resourceID, message, err)

	default:
		return NewAWSError(ErrInternalError, resourceType, resourceID, message, err)
	}
}

func categoryForCode(code string) ErrorCategory {
	switch {
	case strings.HasSuffix(code, ".NotFound") || code == "InvalidResource":
		return ErrResourceNotFound

	case code == "UnauthorizedOperation" || code == "AuthFailure" ||
		code == "InvalidClientTokenId" || code == "OptInRequired" || code == "Blocked":
		return ErrPermissionDenied

	case code == "RequestLimitExceeded" || code == "Throttling" ||
		code == "SnapshotCreationPerVolumeRateExceeded":
		return ErrThrottling

	case code == "IncorrectInstanceState" || code == "IncorrectState" ||
		code == "UnsupportedOperation" || code == "InsufficientInstanceCapacity":
		return ErrIncorrectState

	case strings.HasPrefix(code, "InvalidParameter") || code == "MissingParameter" ||
		code == "ValidationError" || code == "MalformedQueryString":
		return ErrInvalidInput

	default:
		return ErrServiceError
	}
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
