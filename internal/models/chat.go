package models

import (
	"encoding/json"
	"time"
)

type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// ChatMessage is an entry in the append-only conversation log.
type ChatMessage struct {
	ID        string
	Role      ChatRole
	Content   string
	Timestamp time.Time
	Actions   []AIAction
}

type chatMessageJSON struct {
	ID        string             `json:"id"`
	Role      ChatRole           `json:"role"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
	Actions   []AIActionEnvelope `json:"actions,omitempty"`
}

func (m ChatMessage) MarshalJSON() ([]byte, error) {
	out := chatMessageJSON{ID: m.ID, Role: m.Role, Content: m.Content, Timestamp: m.Timestamp}
	for _, a := range m.Actions {
		env, err := EncodeAIAction(a)
		if err != nil {
			return nil, err
		}
		out.Actions = append(out.Actions, env)
	}
	return json.Marshal(out)
}

func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var in chatMessageJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = ChatMessage{ID: in.ID, Role: in.Role, Content: in.Content, Timestamp: in.Timestamp}
	for _, env := range in.Actions {
		a, err := env.Decode()
		if err != nil {
			return err
		}
		m.Actions = append(m.Actions, a)
	}
	return nil
}
