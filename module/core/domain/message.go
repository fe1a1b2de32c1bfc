package domain

// Message is a chat history record. UserID is empty for messages posted by
// integrations under a display name; Username is empty for messages posted by
// regular users.
type Message struct {
	UserID    string   `json:"user,omitempty"`
	Username  string   `json:"username,omitempty"`
	Text      string   `json:"text"`
	Timestamp string   `json:"ts"`
	Reactions []string `json:"reactions,omitempty"`
}

func (m Message) HasUser(id string) bool {
	return m.UserID != "" && m.UserID == id
}

func (m Message) HasUsername(name string) bool {
	return m.Username != "" && m.Username == name
}

func (m Message) HasReactions() bool {
	return len(m.Reactions) > 0
}

type ClearResult struct {
	Requested bool `json:"requested"`
	Deleted   int  `json:"deleted"`
}
