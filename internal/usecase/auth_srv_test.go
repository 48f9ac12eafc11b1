package usecase

import (
	"context"
	"errors"
	"testing"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/dto/request"
	"pool-club/pkg/utils"

	"go.uber.org/zap"
)

func newAuthFixture() (*repository.Repository, AuthService) {
	repo := newTestRepo()
	config := &utils.Config{Auth: utils.AuthConfig{SessionExpiryHours: 24}}
	return repo, NewAuthService(repo, config, zap.NewNop())
}

func newAuthFixtureWithAdmin(adminEmail string) (*repository.Repository, AuthService) {
	repo := newTestRepo()
	config := &utils.Config{Auth: utils.AuthConfig{
		SessionExpiryHours: 24,
		AdminEmail:         adminEmail,
	}}
	return repo, NewAuthService(repo, config, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	_, auth := newAuthFixture()
	ctx := context.Background()

	registered, err := auth.Register(ctx, &request.RegisterRequest{
		FirstName: "Mina",
		LastName:  "Kova",
		Email:     "mina@example.com",
		Password:  "sekrit99",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a session token after register")
	}

	loggedIn, err := auth.Login(ctx, &request.LoginRequest{
		Email:    "mina@example.com",
		Password: "sekrit99",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.UserID != registered.UserID {
		t.Errorf("login user %s, want %s", loggedIn.UserID, registered.UserID)
	}
	if loggedIn.Token == registered.Token {
		t.Error("login must issue a fresh session token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, auth := newAuthFixture()
	ctx := context.Background()

	req := &request.RegisterRequest{
		FirstName: "Mina",
		LastName:  "Kova",
		Email:     "mina@example.com",
		Password:  "sekrit99",
	}
	if _, err := auth.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Register(ctx, req)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, auth := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, &request.RegisterRequest{
		FirstName: "Mina",
		LastName:  "Kova",
		Email:     "mina@example.com",
		Password:  "sekrit99",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Login(ctx, &request.LoginRequest{
		Email:    "mina@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bad credentials, got %v", err)
	}

	_, err = auth.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "sekrit99",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestRegisterAdminEmail(t *testing.T) {
	repo, auth := newAuthFixtureWithAdmin("owner@example.com")
	ctx := context.Background()

	if _, err := auth.Register(ctx, &request.RegisterRequest{
		FirstName: "Olga",
		LastName:  "Reyes",
		Email:     "Owner@Example.com",
		Password:  "sekrit99",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	owner, err := repo.User.FindByEmail(ctx, "Owner@Example.com")
	if err != nil || owner == nil {
		t.Fatalf("find owner: %v %v", owner, err)
	}
	if owner.Role != entity.RoleAdmin {
		t.Errorf("owner role = %s, want %s", owner.Role, entity.RoleAdmin)
	}

	if _, err := auth.Register(ctx, &request.RegisterRequest{
		FirstName: "Mina",
		LastName:  "Kova",
		Email:     "mina@example.com",
		Password:  "sekrit99",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	member, err := repo.User.FindByEmail(ctx, "mina@example.com")
	if err != nil || member == nil {
		t.Fatalf("find member: %v %v", member, err)
	}
	if member.Role != entity.RoleMember {
		t.Errorf("member role = %s, want %s", member.Role, entity.RoleMember)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	repo, auth := newAuthFixture()
	ctx := context.Background()

	registered, err := auth.Register(ctx, &request.RegisterRequest{
		FirstName: "Mina",
		LastName:  "Kova",
		Email:     "mina@example.com",
		Password:  "sekrit99",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	session, err := repo.Session.FindValidSession(ctx, registered.Token)
	if err != nil || session == nil {
		t.Fatalf("expected valid session, got %v %v", session, err)
	}

	if err := auth.Logout(ctx, registered.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	session, err = repo.Session.FindValidSession(ctx, registered.Token)
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if session != nil {
		t.Error("session still valid after logout")
	}
}
