package constvars

const (
	URLParamAppointmentID = "appointment_id"
	URLParamPartition     = "partition"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamSortBy   = "sort_by"
	URLQueryParamSortDir  = "sort_dir"
)

const (
	BackendQueryParamDateFilter = "date_filter"
	BackendQueryParamPage       = "page"
	BackendQueryParamPerPage    = "per_page"
	BackendQueryParamSortBy     = "sort_by"
	BackendQueryParamSortDir    = "sort_dir"
	BackendQueryParamSearch     = "search"
)
