package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streetify/streetify-backend/internal/backend"
	"github.com/streetify/streetify-backend/pkg/auth"
	"github.com/streetify/streetify-backend/pkg/auth/session"
	"github.com/streetify/streetify-backend/pkg/config"
	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Store is the slice of the state container this service needs.
type Store interface {
	Users() State
	DispatchUsers(ctx context.Context, action Action)
}

type authBackend interface {
	SignInWithEmailAndPassword(ctx context.Context, email, password string) (types.User, error)
	CreateUserWithEmailAndPassword(ctx context.Context, input backend.RegisterInput) (types.User, error)
	UpdateUserProfile(ctx context.Context, input backend.UpdateProfileInput) (types.User, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (bool, error)
}

type sessionIssuer interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service exposes account and profile operations on top of the state store.
type Service interface {
	Login(ctx context.Context, input LoginInput) (AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (AuthResult, error)
	Refresh(ctx context.Context, input RefreshInput) (AuthResult, error)
	Logout(ctx context.Context, accessID string) error
	ForgotPassword(ctx context.Context, email string) error
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) error
	Me(ctx context.Context) (State, error)
	SaveProfile(ctx context.Context, patch UpdateProfile) (types.User, error)
	ReplacePreferences(ctx context.Context, prefs types.UserPreferences) (types.User, error)
	AddAddress(ctx context.Context, input AddAddressInput) (types.Address, error)
	RemoveAddress(ctx context.Context, addressID string) error
	ToggleFollow(ctx context.Context, vendorID string) (types.User, error)
}

type service struct {
	store    Store
	backend  authBackend
	sessions sessionIssuer
	jwt      config.JWTConfig
	logg     *logger.Logger
}

// NewService builds a users service backed by the provided stack.
func NewService(store Store, client authBackend, sessions sessionIssuer, jwt config.JWTConfig, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if client == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, backend: client, sessions: sessions, jwt: jwt, logg: logg}, nil
}

// LoginInput carries sign-in credentials.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput carries the new-account payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// RefreshInput carries the expired access token and its refresh token.
type RefreshInput struct {
	AccessToken  string
	RefreshToken string
}

// AddAddressInput carries one saved address; the id is generated here.
type AddAddressInput struct {
	Type      string
	Address   string
	Latitude  float64
	Longitude float64
	Landmark  *string
}

// AuthResult is the signed-in user plus its credential pair.
type AuthResult struct {
	User         types.User
	AccessToken  string
	RefreshToken string
}

func (s *service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return AuthResult{}, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	s.store.DispatchUsers(ctx, SetLoading{Loading: true})
	defer s.store.DispatchUsers(ctx, SetLoading{Loading: false})

	user, err := s.backend.SignInWithEmailAndPassword(ctx, input.Email, input.Password)
	if err != nil {
		msg := err.Error()
		s.store.DispatchUsers(ctx, SetError{Err: &msg})
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "sign in")
	}

	result, err := s.issueCredentials(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	s.store.DispatchUsers(ctx, SetError{Err: nil})
	s.store.DispatchUsers(ctx, SetUser{User: &user})
	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user signed in")
	return result, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return AuthResult{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return AuthResult{}, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	s.store.DispatchUsers(ctx, SetLoading{Loading: true})
	defer s.store.DispatchUsers(ctx, SetLoading{Loading: false})

	user, err := s.backend.CreateUserWithEmailAndPassword(ctx, backend.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		msg := err.Error()
		s.store.DispatchUsers(ctx, SetError{Err: &msg})
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create account")
	}

	result, err := s.issueCredentials(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	s.store.DispatchUsers(ctx, SetError{Err: nil})
	s.store.DispatchUsers(ctx, SetUser{User: &user})
	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "account created")
	return result, nil
}

// Refresh rotates the session bound to the (possibly expired) access token
// and mints a fresh pair.
func (s *service) Refresh(ctx context.Context, input RefreshInput) (AuthResult, error) {
	if input.AccessToken == "" || input.RefreshToken == "" {
		return AuthResult{}, pkgerrors.New(pkgerrors.CodeValidation, "access and refresh tokens are required")
	}

	claims, err := auth.ParseAccessTokenAllowExpired(s.jwt, input.AccessToken)
	if err != nil {
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "parse access token")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, input.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return AuthResult{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	accessToken, err := auth.MintAccessToken(s.jwt, time.Now().UTC(), auth.AccessTokenPayload{
		UserID: claims.UserID,
		Email:  claims.Email,
		JTI:    newAccessID,
	})
	if err != nil {
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	result := AuthResult{AccessToken: accessToken, RefreshToken: newRefresh}
	if current := s.store.Users().CurrentUser; current != nil {
		result.User = *current
	}
	return result, nil
}

// Logout revokes the session and resets the whole slice, saved addresses
// included.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "access id is required")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	s.store.DispatchUsers(ctx, ClearUser{})
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if err := s.backend.SendPasswordResetEmail(ctx, email); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send password reset")
	}
	return nil
}

func (s *service) SendOTP(ctx context.Context, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	if err := s.backend.SendOTP(ctx, phone); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send otp")
	}
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, phone, code string) error {
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(code) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone and code are required")
	}
	ok, err := s.backend.VerifyOTP(ctx, phone, code)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "verify otp")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid otp code")
	}
	return nil
}

func (s *service) Me(ctx context.Context) (State, error) {
	state := s.store.Users()
	if state.CurrentUser == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")
	}
	return state, nil
}

// SaveProfile pushes the patch to the backend, then applies it locally.
func (s *service) SaveProfile(ctx context.Context, patch UpdateProfile) (types.User, error) {
	current := s.store.Users().CurrentUser
	if current == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")
	}

	if _, err := s.backend.UpdateUserProfile(ctx, backend.UpdateProfileInput{
		UserID:     current.ID,
		Name:       patch.DisplayName,
		Phone:      patch.Phone,
		Bio:        patch.Bio,
		ProfilePic: patch.ProfilePic,
	}); err != nil {
		return types.User{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile")
	}

	s.store.DispatchUsers(ctx, patch)
	updated := s.store.Users().CurrentUser
	if updated == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeInternal, "profile missing after update")
	}
	return *updated, nil
}

func (s *service) ReplacePreferences(ctx context.Context, prefs types.UserPreferences) (types.User, error) {
	if s.store.Users().CurrentUser == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")
	}
	s.store.DispatchUsers(ctx, UpdatePreferences{Preferences: prefs})
	updated := s.store.Users().CurrentUser
	if updated == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeInternal, "profile missing after update")
	}
	return *updated, nil
}

func (s *service) AddAddress(ctx context.Context, input AddAddressInput) (types.Address, error) {
	if strings.TrimSpace(input.Address) == "" {
		return types.Address{}, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}
	addrType, err := enums.ParseAddressType(input.Type)
	if err != nil {
		return types.Address{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid address type")
	}

	address := types.Address{
		ID:        uuid.NewString(),
		Type:      addrType,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Landmark:  input.Landmark,
	}
	s.store.DispatchUsers(ctx, AddAddress{Address: address})
	return address, nil
}

func (s *service) RemoveAddress(ctx context.Context, addressID string) error {
	if strings.TrimSpace(addressID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address id is required")
	}
	for _, addr := range s.store.Users().SavedAddresses {
		if addr.ID == addressID {
			s.store.DispatchUsers(ctx, RemoveAddress{AddressID: addressID})
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
}

func (s *service) ToggleFollow(ctx context.Context, vendorID string) (types.User, error) {
	if strings.TrimSpace(vendorID) == "" {
		return types.User{}, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	if s.store.Users().CurrentUser == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")
	}
	s.store.DispatchUsers(ctx, ToggleFollowVendor{VendorID: vendorID})
	updated := s.store.Users().CurrentUser
	if updated == nil {
		return types.User{}, pkgerrors.New(pkgerrors.CodeInternal, "profile missing after update")
	}
	return *updated, nil
}

func (s *service) issueCredentials(ctx context.Context, user types.User) (AuthResult, error) {
	accessID := session.NewAccessID()
	accessToken, err := auth.MintAccessToken(s.jwt, time.Now().UTC(), auth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		JTI:    accessID,
	})
	if err != nil {
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refreshToken, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return AuthResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	return AuthResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
