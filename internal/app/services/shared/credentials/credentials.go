package credentials

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"net/http"
)

// Credentials authorize one vendor call. They are never persisted.
type Credentials struct {
	APIKey      string
	AccessToken string
}

func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.AccessToken != ""
}

// Resolve picks each credential from the request cookies when present and
// non-empty, otherwise from defaults.
func Resolve(cookieHeader string, defaults Credentials) Credentials {
	request := http.Request{Header: http.Header{constvars.HeaderCookie: {cookieHeader}}}
	return FromCookies(request.Cookies(), defaults)
}

func FromRequest(r *http.Request, defaults Credentials) Credentials {
	return FromCookies(r.Cookies(), defaults)
}

func FromCookies(cookies []*http.Cookie, defaults Credentials) Credentials {
	resolved := defaults
	for _, cookie := range cookies {
		if cookie.Value == "" {
			continue
		}
		switch cookie.Name {
		case constvars.CookieVendorAPIKey:
			resolved.APIKey = cookie.Value
		case constvars.CookieVendorAccessToken:
			resolved.AccessToken = cookie.Value
		}
	}
	return resolved
}

func WithContext(ctx context.Context, credentials Credentials) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_CREDENTIALS_KEY, credentials)
}

func FromContext(ctx context.Context) (Credentials, bool) {
	credentials, ok := ctx.Value(constvars.CONTEXT_CREDENTIALS_KEY).(Credentials)
	return credentials, ok
}
