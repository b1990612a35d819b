package middlewares

import (
	"ehr-portal-service/internal/app/services/shared/credentials"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"net/http"
)

// ResolveCredentials places the vendor credentials of the request on its
// context. Requests that cannot reach the vendor stop here with a 500.
func (m *Middlewares) ResolveCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendor := m.InternalConfig.Vendor
		resolved := credentials.FromRequest(r, credentials.Credentials{
			APIKey:      vendor.APIKey,
			AccessToken: vendor.AccessToken,
		})

		if !resolved.Complete() || vendor.BaseUrl == "" || vendor.UrlPrefix == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIConfigurationMissing(nil))
			return
		}

		next.ServeHTTP(w, r.WithContext(credentials.WithContext(r.Context(), resolved)))
	})
}
