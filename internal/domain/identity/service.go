package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medikart/medikart/internal/platform/auth"
)

const minPasswordLength = 6

type Service struct {
	profiles ProfileRepository
	tokens   *auth.TokenIssuer
}

func NewService(profiles ProfileRepository, tokens *auth.TokenIssuer) *Service {
	return &Service{
		profiles: profiles,
		tokens:   tokens,
	}
}

// Register creates a profile with the "user" role and signs a session token
// for it. Emails are stored lowercased so lookups are case-insensitive.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email is invalid")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         RoleUser,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.newSession(p)
}

// Login verifies credentials and signs a session token. The same error is
// returned for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	p, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !auth.CheckPassword(p.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.newSession(p)
}

func (s *Service) newSession(p *Profile) (*Session, error) {
	token, err := s.tokens.Issue(p.ID.String(), p.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Profile: p}, nil
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// UpdateProfile applies the owner-editable fields to the caller's own
// profile. Email and role cannot be changed here.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.FullName != nil {
		p.FullName = upd.FullName
	}
	if upd.Phone != nil {
		p.Phone = upd.Phone
	}
	if upd.Address != nil {
		p.Address = upd.Address
	}
	if err := s.profiles.UpdateOwnerFields(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]*Profile, int, error) {
	return s.profiles.List(ctx, limit, offset)
}
