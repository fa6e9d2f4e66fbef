package services

import "context"

// ChatSvcFacade relays single-turn messages to the assistants. Each call is
// stateless: no conversation history is kept or sent upstream.
type ChatSvcFacade interface {
	// GeneralReply proxies the message to the external completion API with
	// the fixed general-assistant system prompt.
	GeneralReply(ctx context.Context, message string) (string, error)

	// DepartmentReply produces the department-scoped assistant's response.
	// Currently a templated acknowledgement; no retrieval backend exists.
	DepartmentReply(ctx context.Context, department, message string) (string, error)
}
