package models

// FieldIssue points a caller at one invalid field in a request or config
// payload.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
