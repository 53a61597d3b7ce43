package model

// ParityRequest is the expected JSON body for POST /iseven.
// Number is a pointer so a missing key can be told apart from zero.
type ParityRequest struct {
	Number *int64 `json:"number"`
}

// Parity is the response of POST /iseven. The HTTP status carries the same
// verdict (200 even, 400 odd) so shell scripts can branch without parsing.
type Parity struct {
	Number int64 `json:"number"`
	Even   bool  `json:"even"`
}
