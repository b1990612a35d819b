package utils

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

// BuildPageQuery reads _count and page. Missing or malformed values fall
// back to the defaults and the count is capped.
func BuildPageQuery(r *http.Request) *requests.PageQuery {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	count, err := strconv.Atoi(query.Get(constvars.URLQueryParamCount))
	if err != nil || count <= 0 {
		count = constvars.DefaultPageSize
	}
	if count > constvars.MaxPageSize {
		count = constvars.MaxPageSize
	}

	return &requests.PageQuery{
		Page:  page,
		Count: count,
	}
}

func BuildAppointmentQuery(r *http.Request) *requests.AppointmentQuery {
	query := r.URL.Query()

	request := &requests.AppointmentQuery{
		PatientID:      query.Get(constvars.URLQueryParamPatient),
		PractitionerID: query.Get(constvars.URLQueryParamPractitioner),
	}
	if count, err := strconv.Atoi(query.Get(constvars.URLQueryParamCount)); err == nil && count > 0 {
		if count > constvars.MaxPageSize {
			count = constvars.MaxPageSize
		}
		request.Count = count
	}
	return request
}
