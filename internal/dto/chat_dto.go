package dto

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

type SendMessageRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Message   string `json:"message"`
}

type SendMessageResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
	Topic     string `json:"topic,omitempty"`
	Escalated bool   `json:"escalated"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	CatalogAvailable bool   `json:"catalog_available"`
	CatalogSize      int    `json:"catalog_size"`
}
