package exceptions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVendorError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want VendorFailure
	}{
		{
			name: "not found",
			err:  NewVendorStatusError("GET", "Patient", "42", 404, []byte(`{"resourceType":"OperationOutcome"}`)),
			want: VendorNotFound,
		},
		{
			name: "not found wins over conflict token",
			err:  NewVendorStatusError("GET", "Appointment", "9", 404, []byte(`{"error":"BOOKING_UNAVAILABLE"}`)),
			want: VendorNotFound,
		},
		{
			name: "structured conflict code",
			err:  NewVendorStatusError("POST", "Appointment", "", 400, []byte(`{"error":"BOOKING_UNAVAILABLE"}`)),
			want: VendorConflict,
		},
		{
			name: "conflict inside message",
			err:  NewVendorStatusError("POST", "Appointment", "", 422, []byte(`{"message":"slot taken: BOOKING_UNAVAILABLE"}`)),
			want: VendorConflict,
		},
		{
			name: "conflict inside issue diagnostics",
			err:  NewVendorStatusError("POST", "Appointment", "", 409, []byte(`{"issue":[{"diagnostics":"BOOKING_UNAVAILABLE for practitioner"}]}`)),
			want: VendorConflict,
		},
		{
			name: "unauthorized",
			err:  NewVendorStatusError("GET", "Patient", "", 401, nil),
			want: VendorUnauthorized,
		},
		{
			name: "upstream",
			err:  NewVendorStatusError("GET", "Patient", "", 502, []byte("bad gateway")),
			want: VendorUpstream,
		},
		{
			name: "transport",
			err:  NewVendorTransportError("GET", "Patient", "", errors.New("connection refused")),
			want: VendorTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVendorError(tt.err))
		})
	}
}

func TestFromVendorError(t *testing.T) {
	t.Run("not found names the entity", func(t *testing.T) {
		err := FromVendorError(NewVendorStatusError("GET", "Appointment", "9", 404, nil), "Appointment", "Failed to fetch appointment")

		var customErr *CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, "Appointment not found", customErr.ClientMessage)
	})

	t.Run("conflict yields the booking token", func(t *testing.T) {
		err := FromVendorError(NewVendorStatusError("POST", "Appointment", "", 400, []byte(`{"error":"BOOKING_UNAVAILABLE"}`)), "Appointment", "Failed to create appointment")

		var customErr *CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Equal(t, "BOOKING_UNAVAILABLE", customErr.ClientMessage)
	})

	t.Run("upstream echoes vendor payload", func(t *testing.T) {
		err := FromVendorError(NewVendorStatusError("PUT", "Appointment", "1", 500, []byte(`{"message":"boom"}`)), "Appointment", "Failed to update appointment")

		var customErr *CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
		assert.Equal(t, "Failed to update appointment", customErr.ClientMessage)
		assert.NotNil(t, customErr.Details)
	})

	t.Run("deadline maps to gateway timeout", func(t *testing.T) {
		err := FromVendorError(NewVendorTransportError("GET", "Patient", "", context.DeadlineExceeded), "Patient", "Failed to fetch patient")

		var customErr *CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 504, customErr.StatusCode)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("custom errors pass through", func(t *testing.T) {
		original := ErrAPIConfigurationMissing(nil)
		assert.Same(t, original, FromVendorError(original, "Patient", "Failed to fetch patient"))
	})
}
