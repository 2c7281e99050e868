package source

// Query is the generic search request every source translates into its own encoding.
// StartIndex is always 1 + ResultsPerPage*(Page-1).
type Query struct {
	Terms          string `json:"terms"`
	Page           int    `json:"page"`
	ResultsPerPage int    `json:"results_per_page"`
	StartIndex     int    `json:"start_index"`
}

// NewQuery returns the first page of a search for terms.
func NewQuery(terms string, perPage int) Query {
	if perPage < 1 {
		perPage = 1
	}

	return Query{
		Terms:          terms,
		Page:           1,
		ResultsPerPage: perPage,
		StartIndex:     1,
	}
}

// Turn returns a copy of the query moved by incr pages, never below page 1.
func (q Query) Turn(incr int) Query {
	q.Page += incr
	if q.Page < 1 {
		q.Page = 1
	}
	q.StartIndex = 1 + q.ResultsPerPage*(q.Page-1)
	return q
}
