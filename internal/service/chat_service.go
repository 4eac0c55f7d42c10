package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/pkg/llm"

	"github.com/google/uuid"
)

const chatTitleRunes = 30

type IChatService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSummaryResponse, error)
	History(ctx context.Context, userId uuid.UUID, rawChatId string) (*dto.ChatResponse, error)
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	llm        llm.LLMProvider
	log        logger.ILogger
	now        func() time.Time
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		llm:        llmProvider,
		log:        log,
		now:        time.Now,
	}
}

// chatTitle is the first 30 characters of the opening prompt.
func chatTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= chatTitleRunes {
		return prompt
	}
	return string(runes[:chatTitleRunes]) + "..."
}

func toLLMRole(role string) string {
	if role == entity.ChatRoleModel {
		return llm.RoleAssistant
	}
	return llm.RoleUser
}

func (s *chatService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]*dto.ChatSummaryResponse, len(sessions))
	for i, cs := range sessions {
		res[i] = toChatSummary(cs)
	}
	return res, nil
}

// findOwned treats a malformed id, a missing session and someone else's session alike.
func (s *chatService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, rawChatId string) (*entity.ChatSession, error) {
	chatId, err := uuid.Parse(strings.TrimSpace(rawChatId))
	if err != nil {
		return nil, apperror.NotFound(constant.MsgChatNotFound)
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: chatId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, apperror.NotFound(constant.MsgChatNotFound)
	}
	return session, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID, rawChatId string) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findOwned(ctx, uow, userId, rawChatId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toChatResponse(session, messages), nil
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, apperror.BadRequest(constant.MsgPromptRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		session *entity.ChatSession
		history []*entity.ChatMessage
		isNew   = strings.TrimSpace(req.ChatId) == ""
		err     error
	)
	if isNew {
		session = &entity.ChatSession{
			Id:     uuid.New(),
			UserId: userId,
			Title:  chatTitle(prompt),
		}
	} else {
		if session, err = s.findOwned(ctx, uow, userId, req.ChatId); err != nil {
			return nil, err
		}
		history, err = uow.ChatMessageRepository().FindAll(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	conversation := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		conversation = append(conversation, llm.Message{Role: toLLMRole(m.Role), Content: m.Content})
	}
	conversation = append(conversation, llm.Message{Role: llm.RoleUser, Content: prompt})

	answer, err := s.llm.Chat(llm.WithOperation(ctx, "chat"), conversation)
	if err != nil {
		s.log.Error("CHAT", "AI chat call failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, apperror.Upstream(constant.MsgChatAIFailed, err)
	}

	now := s.now()
	turns := []*entity.ChatMessage{
		{Id: uuid.New(), ChatSessionId: session.Id, Role: entity.ChatRoleUser, Content: prompt, Position: len(history), CreatedAt: now},
		{Id: uuid.New(), ChatSessionId: session.Id, Role: entity.ChatRoleModel, Content: answer, Position: len(history) + 1, CreatedAt: now},
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	session.UpdatedAt = now
	if isNew {
		session.CreatedAt = now
		err = uow.ChatSessionRepository().Create(ctx, session)
	} else {
		err = uow.ChatSessionRepository().Update(ctx, session)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uow.ChatMessageRepository().CreateMany(ctx, turns); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.Conflict(constant.MsgChatConflict)
		}
		return nil, apperror.Internal(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.SendChatResponse{
		Response: answer,
		Chat:     toChatResponse(session, append(history, turns...)),
	}, nil
}
