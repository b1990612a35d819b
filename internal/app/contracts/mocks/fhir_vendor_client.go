// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type MockFhirVendorClient struct {
	mock.Mock
}

func (m *MockFhirVendorClient) Search(ctx context.Context, resourceType string, query url.Values) ([]byte, error) {
	args := m.Called(ctx, resourceType, query)
	return bytesArg(args, 0), args.Error(1)
}

func (m *MockFhirVendorClient) Read(ctx context.Context, resourceType, resourceID string) ([]byte, error) {
	args := m.Called(ctx, resourceType, resourceID)
	return bytesArg(args, 0), args.Error(1)
}

func (m *MockFhirVendorClient) Create(ctx context.Context, resourceType string, resource any) ([]byte, error) {
	args := m.Called(ctx, resourceType, resource)
	return bytesArg(args, 0), args.Error(1)
}

func (m *MockFhirVendorClient) Update(ctx context.Context, resourceType, resourceID string, resource any) ([]byte, error) {
	args := m.Called(ctx, resourceType, resourceID, resource)
	return bytesArg(args, 0), args.Error(1)
}

func (m *MockFhirVendorClient) Delete(ctx context.Context, resourceType, resourceID string) error {
	args := m.Called(ctx, resourceType, resourceID)
	return args.Error(0)
}

func bytesArg(args mock.Arguments, index int) []byte {
	switch value := args.Get(index).(type) {
	case []byte:
		return value
	case string:
		return []byte(value)
	default:
		return nil
	}
}
