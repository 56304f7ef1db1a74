package support

// Message is one entry of a user's support thread. Replies from the
// staff come back through the same listing with IsAdmin set.
type Message struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Titre     string `json:"titre"`
	Message   string `json:"message"`
	Lue       bool   `json:"lue"`
	CreatedAt string `json:"created_at,omitempty"`
}
