package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
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
	"teamsync-be/pkg/events"
	"teamsync-be/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	verifications contract.VerificationRepository
	tokens        *token.Manager
	mailQueue     IMailQueue
	publisher     EventPublisher
	log           logger.ILogger
	bcryptCost    int

	// Compared against when the email is unknown so both login failures cost one bcrypt round.
	dummyHash []byte
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	verifications contract.VerificationRepository,
	tokens *token.Manager,
	mailQueue IMailQueue,
	publisher EventPublisher,
	log logger.ILogger,
	bcryptCost int,
) IAuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("teamsync-dummy-password"), bcryptCost)

	return &authService{
		uowFactory:    uowFactory,
		verifications: verifications,
		tokens:        tokens,
		mailQueue:     mailQueue,
		publisher:     publisher,
		log:           log,
		bcryptCost:    bcryptCost,
		dummyHash:     dummy,
	}
}

// generateOTP returns a 6-digit code in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperror.BadRequest(constant.MsgPasswordsMismatch)
	}

	email := normalizeEmail(req.Email)
	roll := strings.TrimSpace(req.Roll)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrRoll{Email: email, Roll: roll})
	if err != nil {
		return apperror.Internal(err)
	}
	if existing != nil {
		return apperror.Conflict(constant.MsgIdentityExists)
	}

	code, err := generateOTP()
	if err != nil {
		return apperror.Internal(err)
	}

	pending := &entity.PendingVerification{
		Email: email,
		Code:  code,
		Draft: entity.RegistrationDraft{
			FullName: strings.TrimSpace(req.FullName),
			College:  strings.TrimSpace(req.College),
			Email:    email,
			Roll:     roll,
			Skills:   req.Skills,
			Domains:  req.Domains,
			Password: req.Password,
		},
		CreatedAt: time.Now(),
	}
	if err := s.verifications.Save(ctx, pending); err != nil {
		return apperror.Internal(err)
	}

	if err := s.mailQueue.EnqueueOTP(ctx, email, code); err != nil {
		s.log.Warn("AUTH", "Failed to queue verification mail", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}

	s.log.Info("AUTH", "Verification code issued", map[string]interface{}{"email": email})
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)

	pending, err := s.verifications.Find(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if pending == nil {
		return nil, apperror.NotFound(constant.MsgOTPExpired)
	}

	if subtle.ConstantTimeCompare([]byte(pending.Code), []byte(strings.TrimSpace(req.Otp))) != 1 {
		return nil, apperror.BadRequest(constant.MsgOTPInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pending.Draft.Password), s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	draft := pending.Draft
	user := &entity.User{
		Id:           uuid.New(),
		FullName:     draft.FullName,
		College:      draft.College,
		Email:        draft.Email,
		Roll:         draft.Roll,
		Skills:       draft.Skills,
		Domains:      draft.Domains,
		PasswordHash: string(hash),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.Conflict(constant.MsgIdentityExists)
		}
		return nil, apperror.Internal(err)
	}

	if err := s.verifications.Delete(ctx, email); err != nil {
		s.log.Warn("AUTH", "Failed to delete pending verification", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}

	publishEvent(ctx, s.publisher, s.log, "AUTH", events.New(events.UserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	}))

	return ToUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperror.BadRequest(constant.MsgCredentialsRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	hash := s.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil || user == nil {
		return nil, apperror.Unauthorized(constant.MsgInvalidCredentials)
	}

	signed, _, err := s.tokens.Issue(user.Id, user.Email, user.FullName)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.publisher, s.log, "AUTH", events.New(events.UserLogin, map[string]interface{}{
		"user_id": user.Id.String(),
	}))

	return &dto.LoginResponse{
		User:  ToUserResponse(user),
		Token: signed,
	}, nil
}
