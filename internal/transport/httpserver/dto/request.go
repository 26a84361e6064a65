// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

// AnalyzeRequest is the body of POST /analyze.
// OllamaModel is accepted for compatibility with the web page and is only logged.
type AnalyzeRequest struct {
	URL         string `json:"url" validate:"required,max=2048"`
	OllamaModel string `json:"ollamaModel" validate:"omitempty,max=200"`
}

// SaveAPIKeyRequest is the body of POST /save_api_key.
type SaveAPIKeyRequest struct {
	APIKey string `json:"apiKey" validate:"required,max=512,printascii"`
}
