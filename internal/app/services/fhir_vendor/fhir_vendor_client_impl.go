package fhir_vendor

import (
	"bytes"
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/services/shared/credentials"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	fhirVendorClientInstance contracts.FhirVendorClient
	onceFhirVendorClient     sync.Once
)

type fhirVendorClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewFhirVendorClient talks to {baseUrl}/{prefix}/{fhirPath}. A zero timeout
// leaves request lifetimes to the caller's context.
func NewFhirVendorClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.FhirVendorClient {
	onceFhirVendorClient.Do(func() {
		fhirVendorClientInstance = newFhirVendorClient(baseUrl, &http.Client{Timeout: timeout}, logger)
	})
	return fhirVendorClientInstance
}

func newFhirVendorClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) *fhirVendorClient {
	return &fhirVendorClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: httpClient,
		Log:        logger,
	}
}

// BuildBaseURL joins the vendor host, tenant prefix and FHIR path, skipping
// empty parts.
func BuildBaseURL(baseUrl, urlPrefix, fhirPath string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{baseUrl, urlPrefix, fhirPath} {
		part = strings.Trim(strings.TrimSpace(part), "/")
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "/")
}

func (c *fhirVendorClient) Search(ctx context.Context, resourceType string, query url.Values) ([]byte, error) {
	return c.do(ctx, "Search", constvars.MethodGet, resourceType, "", query, nil)
}

func (c *fhirVendorClient) Read(ctx context.Context, resourceType, resourceID string) ([]byte, error) {
	return c.do(ctx, "Read", constvars.MethodGet, resourceType, resourceID, nil, nil)
}

func (c *fhirVendorClient) Create(ctx context.Context, resourceType string, resource any) ([]byte, error) {
	return c.do(ctx, "Create", constvars.MethodPost, resourceType, "", nil, resource)
}

func (c *fhirVendorClient) Update(ctx context.Context, resourceType, resourceID string, resource any) ([]byte, error) {
	return c.do(ctx, "Update", constvars.MethodPut, resourceType, resourceID, nil, resource)
}

func (c *fhirVendorClient) Delete(ctx context.Context, resourceType, resourceID string) error {
	_, err := c.do(ctx, "Delete", constvars.MethodDelete, resourceType, resourceID, nil, nil)
	return err
}

func (c *fhirVendorClient) resourceURL(resourceType, resourceID string, query url.Values) string {
	target := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	if resourceID != "" {
		target = fmt.Sprintf("%s/%s", target, url.PathEscape(resourceID))
	}
	if len(query) > 0 {
		target = fmt.Sprintf("%s?%s", target, query.Encode())
	}
	return target
}

func (c *fhirVendorClient) do(ctx context.Context, operation, method, resourceType, resourceID string, query url.Values, payload any) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	logPrefix := fmt.Sprintf("fhirVendorClient.%s", operation)
	c.Log.Info(logPrefix+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	vendorCredentials, ok := credentials.FromContext(ctx)
	if !ok || !vendorCredentials.Complete() || c.BaseUrl == "" {
		c.Log.Error(logPrefix+" vendor configuration missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrAPIConfigurationMissing(nil)
	}

	var body io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			c.Log.Error(logPrefix+" error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	target := c.resourceURL(resourceType, resourceID, query)
	c.Log.Debug(logPrefix+" built URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVendorUrlKey, target),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		c.Log.Error(logPrefix+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+vendorCredentials.AccessToken)
	req.Header.Set(constvars.HeaderXAPIKey, vendorCredentials.APIKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		vendorErr := exceptions.NewVendorTransportError(method, resourceType, resourceID, err)
		c.Log.Error(logPrefix+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVendorFailureKey, exceptions.VendorTransport.String()),
			zap.Error(err),
		)
		return nil, vendorErr
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(logPrefix+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.NewVendorTransportError(method, resourceType, resourceID, err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		vendorErr := exceptions.NewVendorStatusError(method, resourceType, resourceID, resp.StatusCode, responseBody)
		c.Log.Error(logPrefix+" vendor rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingVendorStatusKey, resp.StatusCode),
			zap.String(constvars.LoggingVendorFailureKey, exceptions.ClassifyVendorError(vendorErr).String()),
			zap.ByteString(constvars.LoggingResponseKey, responseBody),
		)
		return nil, vendorErr
	}

	c.Log.Info(logPrefix+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingVendorStatusKey, resp.StatusCode),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)
	return responseBody, nil
}
