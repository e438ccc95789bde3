package requests

import "fmt"

// ConsultationQuery is the full request signature for one partitioned list
// fetch. Two signatures are equal iff all six components are equal; the
// signature doubles as the cache key and as the staleness token.
type ConsultationQuery struct {
	Partition string
	Search    string
	SortBy    string
	SortDir   string
	Page      int
	PageSize  int
}

func (q ConsultationQuery) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d", q.Partition, q.Search, q.SortBy, q.SortDir, q.Page, q.PageSize)
}

func (q ConsultationQuery) Equal(other ConsultationQuery) bool {
	return q == other
}

// ListQuery holds the raw list inputs as parsed from the dashboard request,
// before the orchestrator clamps them into a valid signature.
type ListQuery struct {
	Search   string
	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}
