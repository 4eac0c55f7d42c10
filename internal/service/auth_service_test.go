package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/memory"
	"teamsync-be/pkg/events"
	"teamsync-be/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	store         *fakeStore
	verifications contract.VerificationRepository
	mail          *fakeMailQueue
	publisher     *fakePublisher
	tokens        *token.Manager
	svc           IAuthService
}

func newAuthFixture(t *testing.T, otpTTL time.Duration) *authFixture {
	t.Helper()
	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	f := &authFixture{
		store:         newFakeStore(),
		verifications: memory.NewVerificationRepository(otpTTL),
		mail:          &fakeMailQueue{},
		publisher:     &fakePublisher{},
		tokens:        tokens,
	}
	f.svc = NewAuthService(
		f.store,
		f.verifications,
		f.tokens,
		f.mail,
		f.publisher,
		logger.NewNopLogger(),
		bcrypt.MinCost,
	)
	return f
}

func signupRequest() *dto.SendOTPRequest {
	return &dto.SendOTPRequest{
		FullName:        "Asha Verma",
		College:         "NIT Trichy",
		Email:           "Asha@Example.com",
		Roll:            "CS21B001",
		Skills:          []string{"React", "Go"},
		Domains:         []string{"Web"},
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestSendOTPRejectsMismatchedPasswords(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	req := signupRequest()
	req.ConfirmPassword = "different"

	err := f.svc.SendOTP(context.Background(), req)

	assertAppError(t, err, http.StatusBadRequest, constant.MsgPasswordsMismatch)
	assert.Empty(t, f.mail.codes)

	pending, err := f.verifications.Find(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestSendOTPRejectsExistingIdentity(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	f.store.addUser(&entity.User{Email: "other@example.com", Roll: "CS21B001"})

	err := f.svc.SendOTP(context.Background(), signupRequest())

	assertAppError(t, err, http.StatusConflict, constant.MsgIdentityExists)

	pending, err := f.verifications.Find(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestRegistrationWithShortPassword(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	ctx := context.Background()

	req := &dto.SendOTPRequest{
		FullName:        "A",
		College:         "X",
		Email:           "a@x.edu",
		Roll:            "R1",
		Skills:          []string{"React"},
		Domains:         []string{"Web Development"},
		Password:        "p1",
		ConfirmPassword: "p1",
	}
	require.NoError(t, f.svc.SendOTP(ctx, req))

	user, err := f.svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "a@x.edu", Otp: f.mail.codes["a@x.edu"]})
	require.NoError(t, err)
	assert.Equal(t, []string{"Web Development"}, user.Domains)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "p1")
	assert.NotContains(t, string(raw), "password")

	login, err := f.svc.Login(ctx, &dto.LoginRequest{Email: "a@x.edu", Password: "p1"})
	require.NoError(t, err)
	assert.Equal(t, user.Id, login.User.Id)
}

func TestRegistrationRoundTrip(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, f.svc.SendOTP(ctx, signupRequest()))
	code := f.mail.codes["asha@example.com"]
	require.Len(t, code, 6)
	assert.GreaterOrEqual(t, code, "100000")

	_, err := f.svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "asha@example.com", Otp: "000000"})
	assertAppError(t, err, http.StatusBadRequest, constant.MsgOTPInvalid)

	user, err := f.svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "ASHA@example.com ", Otp: code})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "CS21B001", user.Roll)
	assert.Nil(t, user.TeamId)

	stored := f.store.users[user.Id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	// A confirmed code cannot be replayed.
	_, err = f.svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "asha@example.com", Otp: code})
	assertAppError(t, err, http.StatusNotFound, constant.MsgOTPExpired)

	assert.Equal(t, []string{events.UserRegistered}, f.publisher.types())
}

func TestVerifyOTPAfterExpiry(t *testing.T) {
	f := newAuthFixture(t, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, f.svc.SendOTP(ctx, signupRequest()))
	code := f.mail.codes["asha@example.com"]

	time.Sleep(120 * time.Millisecond)

	_, err := f.svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "asha@example.com", Otp: code})
	assertAppError(t, err, http.StatusNotFound, constant.MsgOTPExpired)
	assert.Empty(t, f.store.users)
}

func TestSendOTPSurvivesMailQueueFailure(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	f.mail.err = errBoom

	assert.NoError(t, f.svc.SendOTP(context.Background(), signupRequest()))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	f.store.addUser(&entity.User{Email: "asha@example.com", Roll: "R1", FullName: "Asha", PasswordHash: string(hash)})

	_, unknownErr := f.svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, wrongErr := f.svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})

	assertAppError(t, unknownErr, http.StatusUnauthorized, constant.MsgInvalidCredentials)
	assertAppError(t, wrongErr, http.StatusUnauthorized, constant.MsgInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginIssuesToken(t *testing.T) {
	f := newAuthFixture(t, time.Minute)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u := f.store.addUser(&entity.User{Email: "asha@example.com", Roll: "R1", FullName: "Asha", PasswordHash: string(hash)})

	res, err := f.svc.Login(context.Background(), &dto.LoginRequest{Email: " Asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, u.Id, res.User.Id)

	claims, err := f.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.Id, claims.UserId())
	assert.Equal(t, []string{events.UserLogin}, f.publisher.types())
}

func TestLoginRequiresCredentials(t *testing.T) {
	f := newAuthFixture(t, time.Minute)

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{Email: "", Password: "x"})

	assertAppError(t, err, http.StatusBadRequest, constant.MsgCredentialsRequired)
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.NotEqual(t, byte('0'), code[0])
	}
}
