package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"net/http"
	"net/url"
)

func (c *Client) Account(ctx context.Context, patientID string) Query[responses.AccountInfo] {
	return read(ctx, c, AccountKey(patientID), func(ctx context.Context) (responses.AccountInfo, error) {
		query := url.Values{constvars.URLQueryParamPatient: {patientID}}
		return call[responses.AccountInfo](ctx, c, http.MethodGet, "/account", query, nil)
	})
}

func (c *Client) Coverage(ctx context.Context, patientID string) Query[[]responses.CoverageInfo] {
	return read(ctx, c, CoverageKey(patientID), func(ctx context.Context) ([]responses.CoverageInfo, error) {
		query := url.Values{constvars.URLQueryParamPatient: {patientID}}
		return call[[]responses.CoverageInfo](ctx, c, http.MethodGet, "/coverage", query, nil)
	})
}
