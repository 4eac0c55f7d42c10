package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatTitle(t *testing.T) {
	assert.Equal(t, "short prompt", chatTitle("short prompt"))
	assert.Equal(t, strings.Repeat("a", 30), chatTitle(strings.Repeat("a", 30)))
	assert.Equal(t, strings.Repeat("é", 30)+"...", chatTitle(strings.Repeat("é", 31)))
}

func TestChatSendStartsAndContinuesConversation(t *testing.T) {
	store := newFakeStore()
	ai := &fakeLLM{reply: "Start with a REST API."}
	svc := NewChatService(store, ai, logger.NewNopLogger())
	userId := uuid.New()
	ctx := context.Background()

	first, err := svc.Send(ctx, userId, &dto.SendChatRequest{Prompt: "How do I build a hackathon project fast?"})
	require.NoError(t, err)
	assert.Equal(t, "Start with a REST API.", first.Response)
	assert.Equal(t, "How do I build a hackathon pro...", first.Chat.Title)
	require.Len(t, first.Chat.History, 2)
	assert.Equal(t, entity.ChatRoleUser, first.Chat.History[0].Role)
	assert.Equal(t, entity.ChatRoleModel, first.Chat.History[1].Role)

	ai.reply = "Use Go."
	second, err := svc.Send(ctx, userId, &dto.SendChatRequest{Prompt: "Which language?", ChatId: first.Chat.Id.String()})
	require.NoError(t, err)
	require.Len(t, second.Chat.History, 4)
	assert.Equal(t, "Use Go.", second.Chat.History[3].Parts)

	require.Len(t, ai.history, 3)
	assert.Equal(t, llm.RoleUser, ai.history[0].Role)
	assert.Equal(t, llm.RoleAssistant, ai.history[1].Role)
	assert.Equal(t, "Which language?", ai.history[2].Content)

	history, err := svc.History(ctx, userId, first.Chat.Id.String())
	require.NoError(t, err)
	require.Len(t, history.History, 4)
	for i, m := range store.messages {
		assert.Equal(t, i, m.Position)
	}
}

func TestChatSendConflictsWithConcurrentTurn(t *testing.T) {
	store := newFakeStore()
	ai := &fakeLLM{reply: "ok"}
	svc := NewChatService(store, ai, logger.NewNopLogger())
	userId := uuid.New()
	ctx := context.Background()

	first, err := svc.Send(ctx, userId, &dto.SendChatRequest{Prompt: "hi"})
	require.NoError(t, err)
	chatId := first.Chat.Id

	// Another request commits its turns while this one waits on the model.
	ai.onChat = func() {
		store.messages = append(store.messages,
			&entity.ChatMessage{Id: uuid.New(), ChatSessionId: chatId, Role: entity.ChatRoleUser, Content: "other", Position: 2},
			&entity.ChatMessage{Id: uuid.New(), ChatSessionId: chatId, Role: entity.ChatRoleModel, Content: "other reply", Position: 3},
		)
	}

	_, err = svc.Send(ctx, userId, &dto.SendChatRequest{Prompt: "again", ChatId: chatId.String()})

	assertAppError(t, err, http.StatusConflict, constant.MsgChatConflict)
	require.Len(t, store.messages, 4)
	for i, m := range store.messages {
		assert.Equal(t, i, m.Position)
	}
}

func TestChatSendPersistsNothingOnAIFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewChatService(store, &fakeLLM{err: errBoom}, logger.NewNopLogger())

	_, err := svc.Send(context.Background(), uuid.New(), &dto.SendChatRequest{Prompt: "hello"})

	assertAppError(t, err, http.StatusInternalServerError, constant.MsgChatAIFailed)
	assert.Empty(t, store.sessions)
	assert.Empty(t, store.messages)
}

func TestChatSendRequiresPrompt(t *testing.T) {
	ai := &fakeLLM{}
	svc := NewChatService(newFakeStore(), ai, logger.NewNopLogger())

	_, err := svc.Send(context.Background(), uuid.New(), &dto.SendChatRequest{Prompt: "   "})

	assertAppError(t, err, http.StatusBadRequest, constant.MsgPromptRequired)
	assert.Zero(t, ai.calls)
}

func TestChatIsScopedToOwner(t *testing.T) {
	store := newFakeStore()
	svc := NewChatService(store, &fakeLLM{reply: "hi"}, logger.NewNopLogger())
	ctx := context.Background()
	owner := uuid.New()

	res, err := svc.Send(ctx, owner, &dto.SendChatRequest{Prompt: "hello"})
	require.NoError(t, err)

	stranger := uuid.New()
	_, err = svc.History(ctx, stranger, res.Chat.Id.String())
	assertAppError(t, err, http.StatusNotFound, constant.MsgChatNotFound)

	_, err = svc.Send(ctx, stranger, &dto.SendChatRequest{Prompt: "hijack", ChatId: res.Chat.Id.String()})
	assertAppError(t, err, http.StatusNotFound, constant.MsgChatNotFound)

	_, err = svc.History(ctx, owner, "not-a-uuid")
	assertAppError(t, err, http.StatusNotFound, constant.MsgChatNotFound)

	list, err := svc.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
