package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	sendErr  error
	sent     *dto.SendOTPRequest
	loginRes *dto.LoginResponse
	loginErr error
}

func (f *fakeAuthService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) error {
	f.sent = req
	return f.sendErr
}

func (f *fakeAuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginRes, f.loginErr
}

type fakeProjectService struct {
	created *dto.CreateProjectRequest
	body    string
}

func (f *fakeProjectService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	f.created = req
	if req.Image == nil {
		return nil, apperror.BadRequest(constant.MsgImageRequired)
	}
	raw, _ := io.ReadAll(req.Image.Body)
	f.body = string(raw)
	return &dto.ProjectResponse{Owner: ownerId, Title: req.Title}, nil
}

func (f *fakeProjectService) List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ProjectResponse, error) {
	return []*dto.ProjectResponse{}, nil
}

func (f *fakeProjectService) Delete(ctx context.Context, ownerId uuid.UUID, rawId string) error {
	return apperror.Forbidden(constant.MsgProjectForbidden)
}

type userFinder map[uuid.UUID]*entity.User

func (u userFinder) FindSessionUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u[id], nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(logger.NewNopLogger())})
}

func decode(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSendOTPValidation(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp()
	NewAuthController(svc, SessionCookie{Name: "token", Days: 7}).RegisterRoutes(app)

	res, err := app.Test(jsonRequest(http.MethodPost, "/auth/send-otp", `{"email":"asha@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "fullName is required", decode(t, res)["message"])
	assert.Nil(t, svc.sent)

	res, err = app.Test(jsonRequest(http.MethodPost, "/auth/send-otp", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSendOTPAcceptsShortPassword(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp()
	NewAuthController(svc, SessionCookie{Name: "token", Days: 7}).RegisterRoutes(app)

	body := `{"fullName":"A","college":"X","email":"a@x.edu","roll":"R1","password":"p1","confirmPassword":"p1",` +
		`"skills":["React"],"domains":["Web Development"]}`
	res, err := app.Test(jsonRequest(http.MethodPost, "/auth/send-otp", body))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, svc.sent)
	assert.Equal(t, "p1", svc.sent.Password)
	assert.Equal(t, []string{"Web Development"}, svc.sent.Domains)
}

func TestSendOTPMapsServiceErrors(t *testing.T) {
	svc := &fakeAuthService{sendErr: apperror.Conflict(constant.MsgIdentityExists)}
	app := newTestApp()
	NewAuthController(svc, SessionCookie{Name: "token", Days: 7}).RegisterRoutes(app)

	body := `{"fullName":"Asha","college":"NIT","email":"asha@example.com","roll":"R1","password":"secret1","confirmPassword":"secret1"}`
	res, err := app.Test(jsonRequest(http.MethodPost, "/auth/send-otp", body))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	got := decode(t, res)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, constant.MsgIdentityExists, got["message"])
}

func TestLoginSetsAndLogoutClearsCookie(t *testing.T) {
	svc := &fakeAuthService{loginRes: &dto.LoginResponse{User: &dto.UserResponse{Email: "asha@example.com"}, Token: "signed"}}
	app := newTestApp()
	NewAuthController(svc, SessionCookie{Name: "token", Days: 7, Secure: true}).RegisterRoutes(app)

	res, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"x"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), cookies[0].Expires, time.Minute)

	res, err = app.Test(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, res.Cookies(), 1)
	assert.Empty(t, res.Cookies()[0].Value)
}

func TestLoginFailureKeepsCookieUnset(t *testing.T) {
	svc := &fakeAuthService{loginErr: apperror.Unauthorized(constant.MsgInvalidCredentials)}
	app := newTestApp()
	NewAuthController(svc, SessionCookie{Name: "token", Days: 7}).RegisterRoutes(app)

	res, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"x"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Empty(t, res.Cookies())
}

func newTokens(t *testing.T) *token.Manager {
	t.Helper()
	tokens, err := token.NewManager("secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestGuardedRoutesRequireCookie(t *testing.T) {
	tokens := newTokens(t)
	app := newTestApp()
	guard := serverutils.SessionGuard(tokens, userFinder{}, "token")
	NewProjectController(&fakeProjectService{}, guard).RegisterRoutes(app)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Unauthorized request. No token provided.", decode(t, res)["message"])
}

func TestGetMeHidesPassword(t *testing.T) {
	tokens := newTokens(t)
	user := &entity.User{Id: uuid.New(), FullName: "Asha", Email: "asha@example.com", PasswordHash: "super-secret-hash"}
	signed, _, err := tokens.Issue(user.Id, user.Email, user.FullName)
	require.NoError(t, err)

	app := newTestApp()
	guard := serverutils.SessionGuard(tokens, userFinder{user.Id: user}, "token")
	NewUserController(nil, guard).RegisterRoutes(app)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(raw), "asha@example.com")
	assert.NotContains(t, string(raw), "super-secret-hash")
}

func TestCreateProjectMultipart(t *testing.T) {
	tokens := newTokens(t)
	user := &entity.User{Id: uuid.New()}
	signed, _, err := tokens.Issue(user.Id, "", "")
	require.NoError(t, err)

	svc := &fakeProjectService{}
	app := newTestApp()
	NewProjectController(svc, serverutils.SessionGuard(tokens, userFinder{user.Id: user}, "token")).RegisterRoutes(app)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Campus Map"))
	require.NoError(t, w.WriteField("tags", "go, maps"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="map.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("pngdata"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/projects", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	res, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "Campus Map", svc.created.Title)
	assert.Equal(t, "go, maps", svc.created.Tags)
	require.NotNil(t, svc.created.Image)
	assert.Equal(t, "map.png", svc.created.Image.Filename)
	assert.Equal(t, "image/png", svc.created.Image.ContentType)
	assert.Equal(t, "pngdata", svc.body)

	del := httptest.NewRequest(http.MethodDelete, "/projects/"+uuid.NewString(), nil)
	del.AddCookie(&http.Cookie{Name: "token", Value: signed})
	res, err = app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
