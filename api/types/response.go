package types

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Page is the list envelope: total row count, current page, page count
// and the serialized results for the requested page.
type Page struct {
	Count   int64 `json:"count"`
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	Results any   `json:"results"`
}
