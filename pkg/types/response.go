package types

type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   APIError `json:"error"`
}

// FeedEnvelope is the paged response shared by the collection and discovery feeds.
// TotalLength is either an integer or the string "unknown".
type FeedEnvelope struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data"`
	Message     string `json:"message,omitempty"`
	TotalLength any    `json:"__totalLength"`
	MoreToLoad  bool   `json:"__moreToLoad"`
	Loaded      int    `json:"__loaded"`
}
