// Package agent wraps the conversational assistant ("Agent Moussa") behind
// an opaque request/response boundary. Failures never reach the caller as
// errors; they become a static fallback reply in the conversation log.
package agent

import "context"

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "model"
)

// Message is one entry of the conversation log.
type Message struct {
	Role    Role
	Content string
}

// Canned replies. The fallback stands in for any transport or service
// failure; the welcome opens every session.
const (
	WelcomeReply  = "Salam ! Je suis Moussa, ton assistant financier. Comment puis-je t'aider ?"
	FallbackReply = "Désolé, j'ai rencontré une erreur de connexion."
)

// SystemPrompt frames the assistant for the app's audience.
const SystemPrompt = `Tu es Moussa, un assistant financier pour petits entrepreneurs et commerçants.
Tu es professionnel mais accessible, tu parles français, et la devise de référence est le FCFA.
Tu aides à catégoriser des dépenses, gérer la trésorerie, suivre les dettes et utiliser l'application Flux.
Si on te demande d'effectuer une action réelle, explique comment la faire dans l'application.`

//go:generate mockgen -source=agent.go -destination=conversationalist_mock.go -package=agent
type Conversationalist interface {
	// Converse sends the conversation so far plus the new user message and
	// returns the assistant's reply.
	Converse(ctx context.Context, system string, history []Message) (string, error)
}

// Session holds one conversation. It is not persisted anywhere: a restart
// starts a fresh log.
type Session struct {
	c       Conversationalist
	system  string
	history []Message
}

// NewSession opens a conversation seeded with the welcome message.
func NewSession(c Conversationalist, systemPrompt string) *Session {
	return &Session{
		c:      c,
		system: systemPrompt,
		history: []Message{
			{Role: RoleAgent, Content: WelcomeReply},
		},
	}
}

// Send delivers the user's text and returns the reply. On any failure the
// reply is FallbackReply; no error kind is surfaced to the caller.
func (s *Session) Send(ctx context.Context, text string) string {
	s.history = append(s.history, Message{Role: RoleUser, Content: text})

	reply, err := s.c.Converse(ctx, s.system, s.history)
	if err != nil || reply == "" {
		reply = FallbackReply
	}

	s.history = append(s.history, Message{Role: RoleAgent, Content: reply})

	return reply
}

// History returns the conversation log in order, welcome message included.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)

	return out
}
