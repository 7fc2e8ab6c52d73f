package chat

// Message roles. Conversations are client-owned ordered sequences of these;
// the server never stores them.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxMessages is the authoritative cap on inbound conversation length.
// A request carrying more messages than this is rejected before any
// upstream call is made.
const MaxMessages = 40

// Message is a single conversation turn as sent by the client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidRole reports whether the role is one a client may submit.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
