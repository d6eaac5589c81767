package domain

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of the assistant conversation. The full running
// history travels with every request; the service keeps no chat state.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatSource is optional citation metadata attached to a model reply.
type ChatSource struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// ChatReply is the assistant's answer. On any upstream failure Text
// carries the canned apology and Sources is empty.
type ChatReply struct {
	Text    string       `json:"text"`
	Sources []ChatSource `json:"sources,omitempty"`
}
