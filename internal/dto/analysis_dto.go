package dto

import "ai-roomplanner-be/internal/entity"

type SubmitInspirationRequest struct {
	ImageRef   string   `json:"imageRef" validate:"required"`
	ColorHints []string `json:"colorHints"`
}

type AnalysisStatusResponse struct {
	SessionId   string              `json:"sessionId"`
	IsAnalyzing bool                `json:"isAnalyzing"`
	Detected    []entity.StyleScore `json:"detected,omitempty"`
}
