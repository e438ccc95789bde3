package utils

import (
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func BuildListQueryRequest(r *http.Request) *requests.ListQuery {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil {
		page = 1
	}

	pageSize, err := strconv.Atoi(query.Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	sortDir := strings.ToLower(query.Get(constvars.URLQueryParamSortDir))
	if sortDir != constvars.SortDirectionDescending {
		sortDir = constvars.SortDirectionAscending
	}

	return &requests.ListQuery{
		Search:   query.Get(constvars.URLQueryParamSearch),
		SortBy:   query.Get(constvars.URLQueryParamSortBy),
		SortDir:  sortDir,
		Page:     page,
		PageSize: pageSize,
	}
}

// ExtractBearerToken returns the credential from an Authorization header, or
// an empty string when the header is absent or malformed.
func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, constvars.BearerTokenPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, constvars.BearerTokenPrefix)
}
