package exceptions

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// VendorFailure is the single classification of a failed vendor call.
type VendorFailure int

const (
	VendorUpstream VendorFailure = iota
	VendorNotFound
	VendorConflict
	VendorUnauthorized
	VendorTransport
)

func (f VendorFailure) String() string {
	switch f {
	case VendorNotFound:
		return "not_found"
	case VendorConflict:
		return "conflict"
	case VendorUnauthorized:
		return "unauthorized"
	case VendorTransport:
		return "transport"
	default:
		return "upstream"
	}
}

// VendorError is returned by the vendor client for any non-2xx response
// or transport failure.
type VendorError struct {
	Method       string
	ResourceType string
	ResourceID   string
	StatusCode   int
	Body         []byte
	cause        error
}

func NewVendorStatusError(method, resourceType, resourceID string, statusCode int, body []byte) *VendorError {
	return &VendorError{
		Method:       method,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		StatusCode:   statusCode,
		Body:         body,
	}
}

func NewVendorTransportError(method, resourceType, resourceID string, err error) *VendorError {
	return &VendorError{
		Method:       method,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		cause:        err,
	}
}

func (e *VendorError) Error() string {
	target := e.ResourceType
	if e.ResourceID != "" {
		target = fmt.Sprintf("%s/%s", e.ResourceType, e.ResourceID)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %s", e.Method, target, e.cause.Error())
	}
	return fmt.Sprintf("%s %s: "+constvars.ErrDevVendorRejected, e.Method, target, e.StatusCode, e.ResourceType)
}

func (e *VendorError) Unwrap() error {
	return e.cause
}

// Payload returns the vendor body as raw JSON when it parses, otherwise as text.
func (e *VendorError) Payload() any {
	if len(e.Body) == 0 {
		return nil
	}
	if gjson.ValidBytes(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}

// IsBookingUnavailable reports whether a vendor body carries the booking
// conflict token, either as the structured error code or inside a message.
func IsBookingUnavailable(body []byte) bool {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return false
	}
	token := constvars.VendorConflictBookingUnavailable
	if gjson.GetBytes(body, "error").String() == token {
		return true
	}
	if gjson.GetBytes(body, "code").String() == token {
		return true
	}
	if strings.Contains(gjson.GetBytes(body, "message").String(), token) {
		return true
	}
	for _, diagnostics := range gjson.GetBytes(body, "issue.#.diagnostics").Array() {
		if strings.Contains(diagnostics.String(), token) {
			return true
		}
	}
	return false
}

func ClassifyVendorError(err error) VendorFailure {
	var vendorErr *VendorError
	if !errors.As(err, &vendorErr) {
		return VendorTransport
	}
	if vendorErr.cause != nil || vendorErr.StatusCode == 0 {
		return VendorTransport
	}
	if vendorErr.StatusCode == constvars.StatusNotFound {
		return VendorNotFound
	}
	if IsBookingUnavailable(vendorErr.Body) {
		return VendorConflict
	}
	switch vendorErr.StatusCode {
	case constvars.StatusUnauthorized, constvars.StatusForbidden:
		return VendorUnauthorized
	default:
		return VendorUpstream
	}
}

// FromVendorError maps a vendor client error onto the client facing taxonomy.
// entity names the resource in "not found" messages, failureMessage is used
// for every failure that is not otherwise distinguished.
func FromVendorError(err error, entity, failureMessage string) error {
	if err == nil {
		return nil
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	var vendorErr *VendorError
	resourceType := entity
	if errors.As(err, &vendorErr) {
		resourceType = vendorErr.ResourceType
	}

	switch ClassifyVendorError(err) {
	case VendorNotFound:
		return ErrResourceNotFound(err, entity)
	case VendorConflict:
		return ErrBookingUnavailable(err, resourceType)
	case VendorTransport:
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrServerDeadlineExceeded(err)
		}
		return ErrVendorUpstream(err, failureMessage, resourceType)
	default:
		upstream := ErrVendorUpstream(err, failureMessage, resourceType)
		if vendorErr != nil {
			upstream.WithDetails(vendorErr.Payload())
		}
		return upstream
	}
}

func IsVendorNotFound(err error) bool {
	return ClassifyVendorError(err) == VendorNotFound
}
