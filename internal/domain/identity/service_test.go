package identity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medikart/medikart/internal/platform/auth"
)

// -- Mock Repository --

type mockProfileRepo struct {
	profiles map[uuid.UUID]*Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[uuid.UUID]*Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, p *Profile) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockProfileRepo) GetByEmail(_ context.Context, email string) (*Profile, error) {
	for _, p := range m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockProfileRepo) UpdateOwnerFields(_ context.Context, p *Profile) error {
	if _, ok := m.profiles[p.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileRepo) List(_ context.Context, limit, offset int) ([]*Profile, int, error) {
	var result []*Profile
	for _, p := range m.profiles {
		result = append(result, p)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

// -- Tests --

func newIdentityTestService() *Service {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewService(newMockProfileRepo(), issuer)
}

func TestRegister(t *testing.T) {
	svc := newIdentityTestService()
	sess, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Shopper@Example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}
	if sess.Profile.Email != "shopper@example.com" {
		t.Errorf("expected lowercased email, got %s", sess.Profile.Email)
	}
	if sess.Profile.Role != RoleUser {
		t.Errorf("expected role 'user', got %s", sess.Profile.Role)
	}
	if sess.Profile.PasswordHash == "s3cret!" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestRegister_EmailRequired(t *testing.T) {
	svc := newIdentityTestService()
	if _, err := svc.Register(context.Background(), RegisterRequest{Password: "s3cret!"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newIdentityTestService()
	if _, err := svc.Register(context.Background(), RegisterRequest{Email: "nope", Password: "s3cret!"}); err == nil {
		t.Error("expected error for malformed email")
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newIdentityTestService()
	if _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "abc"}); err == nil {
		t.Error("expected error for short password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newIdentityTestService()
	req := RegisterRequest{Email: "a@b.com", Password: "s3cret!"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestLogin(t *testing.T) {
	svc := newIdentityTestService()
	svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "s3cret!"})

	sess, err := svc.Login(context.Background(), LoginRequest{Email: "A@B.com", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}

	claims, err := auth.ParseToken("test-secret", sess.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != sess.Profile.ID.String() {
		t.Error("token subject does not match profile")
	}
	if claims.Role != RoleUser {
		t.Errorf("expected role claim 'user', got %s", claims.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newIdentityTestService()
	svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "s3cret!"})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error for wrong password")
	}
	if err.Error() != "invalid email or password" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newIdentityTestService()
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@b.com", Password: "s3cret!"})
	if err == nil {
		t.Fatal("expected error for unknown email")
	}
	if err.Error() != "invalid email or password" {
		t.Errorf("unknown email must not be distinguishable: %v", err)
	}
}

func TestUpdateProfile_OwnerFieldsOnly(t *testing.T) {
	svc := newIdentityTestService()
	sess, _ := svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "s3cret!"})

	name := "Asha Patel"
	phone := "9876543210"
	p, err := svc.UpdateProfile(context.Background(), sess.Profile.ID, ProfileUpdate{FullName: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FullName == nil || *p.FullName != name {
		t.Error("expected full_name to be updated")
	}
	if p.Phone == nil || *p.Phone != phone {
		t.Error("expected phone to be updated")
	}
	if p.Role != RoleUser {
		t.Error("role must not change through a profile update")
	}
	if p.Email != "a@b.com" {
		t.Error("email must not change through a profile update")
	}
}

func TestUpdateProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
	svc := newIdentityTestService()
	name := "Asha Patel"
	sess, _ := svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "s3cret!", FullName: &name})

	addr := "22 MG Road, Pune"
	p, err := svc.UpdateProfile(context.Background(), sess.Profile.ID, ProfileUpdate{Address: &addr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FullName == nil || *p.FullName != name {
		t.Error("unspecified fields must be left alone")
	}
	if p.Address == nil || *p.Address != addr {
		t.Error("expected address to be updated")
	}
}

func TestListProfiles(t *testing.T) {
	svc := newIdentityTestService()
	for i := 0; i < 3; i++ {
		svc.Register(context.Background(), RegisterRequest{
			Email:    fmt.Sprintf("user%d@b.com", i),
			Password: "s3cret!",
		})
	}

	items, total, err := svc.ListProfiles(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}
