package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/streetify/streetify-backend/api/middleware"
	"github.com/streetify/streetify-backend/internal/users"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/types"
)

type stubUsersService struct {
	result        users.AuthResult
	state         users.State
	user          types.User
	address       types.Address
	err           error
	loggedOutWith string
	lastLogin     users.LoginInput
	lastProfile   users.UpdateProfile
	lastAddress   users.AddAddressInput
	removedID     string
	followedID    string
}

func (s *stubUsersService) Login(ctx context.Context, input users.LoginInput) (users.AuthResult, error) {
	s.lastLogin = input
	return s.result, s.err
}

func (s *stubUsersService) Register(ctx context.Context, input users.RegisterInput) (users.AuthResult, error) {
	return s.result, s.err
}

func (s *stubUsersService) Refresh(ctx context.Context, input users.RefreshInput) (users.AuthResult, error) {
	return s.result, s.err
}

func (s *stubUsersService) Logout(ctx context.Context, accessID string) error {
	s.loggedOutWith = accessID
	return s.err
}

func (s *stubUsersService) ForgotPassword(ctx context.Context, email string) error { return s.err }
func (s *stubUsersService) SendOTP(ctx context.Context, phone string) error        { return s.err }
func (s *stubUsersService) VerifyOTP(ctx context.Context, phone, code string) error {
	return s.err
}

func (s *stubUsersService) Me(ctx context.Context) (users.State, error) {
	return s.state, s.err
}

func (s *stubUsersService) SaveProfile(ctx context.Context, patch users.UpdateProfile) (types.User, error) {
	s.lastProfile = patch
	return s.user, s.err
}

func (s *stubUsersService) ReplacePreferences(ctx context.Context, prefs types.UserPreferences) (types.User, error) {
	return s.user, s.err
}

func (s *stubUsersService) AddAddress(ctx context.Context, input users.AddAddressInput) (types.Address, error) {
	s.lastAddress = input
	return s.address, s.err
}

func (s *stubUsersService) RemoveAddress(ctx context.Context, addressID string) error {
	s.removedID = addressID
	return s.err
}

func (s *stubUsersService) ToggleFollow(ctx context.Context, vendorID string) (types.User, error) {
	s.followedID = vendorID
	return s.user, s.err
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubUsersService{result: users.AuthResult{
		User:         types.User{ID: "u1", Name: "Maria", Email: "maria@streetify.food"},
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}
	handler := AuthLogin(svc, silentLogger())

	body := `{"email":"maria@streetify.food","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastLogin.Email != "maria@streetify.food" {
		t.Fatalf("service got email %q", svc.lastLogin.Email)
	}

	var envelope struct {
		Data authResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "access" || envelope.Data.User.ID != "u1" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestAuthLoginRejectsMalformedEmail(t *testing.T) {
	handler := AuthLogin(&stubUsersService{}, silentLogger())

	body := `{"email":"not-an-email","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := AuthLogin(svc, silentLogger())

	body := `{"email":"maria@streetify.food","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRegisterCreated(t *testing.T) {
	svc := &stubUsersService{result: users.AuthResult{User: types.User{ID: "u2"}}}
	handler := AuthRegister(svc, silentLogger())

	body := `{"name":"Maria","email":"maria@streetify.food","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	handler := AuthRegister(&stubUsersService{}, silentLogger())

	body := `{"name":"Maria","email":"maria@streetify.food","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLogoutRequiresSessionContext(t *testing.T) {
	handler := AuthLogout(&stubUsersService{}, silentLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLogoutRevokesSession(t *testing.T) {
	svc := &stubUsersService{}
	handler := AuthLogout(svc, silentLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(middleware.WithAccessID(req.Context(), "sess-1"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.loggedOutWith != "sess-1" {
		t.Fatalf("logout got access id %q", svc.loggedOutWith)
	}
}

func TestAuthVerifyOTPRejected(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid code")}
	handler := AuthVerifyOTP(svc, silentLogger())

	body := `{"phone":"+5215512345678","code":"000000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp/verify", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRefreshReturnsNewPair(t *testing.T) {
	svc := &stubUsersService{result: users.AuthResult{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}}
	handler := AuthRefresh(svc, silentLogger())

	body := `{"access_token":"old-access","refresh_token":"old-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data authResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "new-access" {
		t.Fatalf("unexpected access token %q", envelope.Data.AccessToken)
	}
}
