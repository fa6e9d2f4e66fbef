package dto

// ChatRequest is the single-turn message sent to either assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// DepartmentChatRequest scopes a message to one department's assistant.
type DepartmentChatRequest struct {
	Department string `json:"department" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatErrorResponse is returned with HTTP 500 on any upstream failure: the
// raw error detail plus the fixed user-facing fallback text.
type ChatErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response"`
}
