// Package chat carries the free-form conversation with Minaria.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/llm"
)

// Apology is what Minaria says when the model call fails. The session
// keeps going; the error never reaches the learner as an error.
const Apology = "Oh dear, something went wrong on my end… I'm sorry 💦 Could you tell me that once more in a little while?"

const (
	maxReplyTokens = 600
	replyTimeout   = 30 * time.Second
)

// Exchange is one user line and Minaria's reply.
type Exchange struct {
	User  string
	Reply string
}

// Service generates persona replies.
type Service struct {
	provider llm.Provider
}

// NewService creates a chat service on top of the given provider.
func NewService(p llm.Provider) *Service {
	return &Service{provider: p}
}

// Reply sends the conversation so far plus the new user line and
// returns Minaria's answer. On any failure it returns the apology line
// and the underlying error for logging.
func (s *Service) Reply(ctx context.Context, history []Exchange, userInput string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)
	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	msgs := make([]llm.Message, 0, 2*len(history)+1)
	for _, ex := range history {
		msgs = append(msgs,
			llm.Message{Role: llm.RoleUser, Content: ex.User},
			llm.Message{Role: llm.RoleAssistant, Content: ex.Reply},
		)
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userInput})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      content.MinariaSystemPrompt,
		Messages:    msgs,
		MaxTokens:   maxReplyTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Apology, err
	}

	reply := strings.TrimSpace(strings.Trim(string(resp.Content), `"`))
	if reply == "" {
		return Apology, nil
	}
	return reply, nil
}
