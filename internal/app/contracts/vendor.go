package contracts

import (
	"context"
	"net/url"
)

// FhirVendorClient returns raw vendor JSON. Failures are
// *exceptions.VendorError unless the request never left this service.
type FhirVendorClient interface {
	Search(ctx context.Context, resourceType string, query url.Values) ([]byte, error)
	Read(ctx context.Context, resourceType, resourceID string) ([]byte, error)
	Create(ctx context.Context, resourceType string, resource any) ([]byte, error)
	Update(ctx context.Context, resourceType, resourceID string, resource any) ([]byte, error)
	Delete(ctx context.Context, resourceType, resourceID string) error
}
