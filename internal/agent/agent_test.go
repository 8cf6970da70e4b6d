package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/razoraze123/flux/internal/agent"
)

func TestSession_OpensWithWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := agent.NewMockConversationalist(ctrl)
	s := agent.NewSession(c, agent.SystemPrompt)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, agent.RoleAgent, history[0].Role)
	assert.Equal(t, agent.WelcomeReply, history[0].Content)
}

func TestSession_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := agent.NewMockConversationalist(ctrl)
	s := agent.NewSession(c, agent.SystemPrompt)

	c.EXPECT().
		Converse(gomock.Any(), agent.SystemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, history []agent.Message) (string, error) {
			// Welcome plus the just-sent user message.
			require.Len(t, history, 2)
			assert.Equal(t, agent.RoleUser, history[1].Role)
			assert.Equal(t, "Comment catégoriser un achat de tissu ?", history[1].Content)

			return "Classe-le dans Matériel.", nil
		})

	reply := s.Send(context.Background(), "Comment catégoriser un achat de tissu ?")
	assert.Equal(t, "Classe-le dans Matériel.", reply)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, agent.RoleAgent, history[2].Role)
	assert.Equal(t, "Classe-le dans Matériel.", history[2].Content)
}

func TestSession_Send_FallbackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := agent.NewMockConversationalist(ctrl)
	s := agent.NewSession(c, agent.SystemPrompt)

	c.EXPECT().
		Converse(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	reply := s.Send(context.Background(), "Salut")
	assert.Equal(t, agent.FallbackReply, reply)

	// The failed exchange still lands in the log as a normal reply.
	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, agent.FallbackReply, history[2].Content)
}

func TestSession_Send_FallbackOnEmptyReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := agent.NewMockConversationalist(ctrl)
	s := agent.NewSession(c, agent.SystemPrompt)

	c.EXPECT().
		Converse(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil)

	assert.Equal(t, agent.FallbackReply, s.Send(context.Background(), "Salut"))
}

func TestSession_HistoryIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := agent.NewMockConversationalist(ctrl)
	s := agent.NewSession(c, agent.SystemPrompt)

	history := s.History()
	history[0].Content = "mutated"

	assert.Equal(t, agent.WelcomeReply, s.History()[0].Content)
}
