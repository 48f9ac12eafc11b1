package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/data/repository/memory"
	"pool-club/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedSessionUser(t *testing.T, repo *repository.Repository, email string, role entity.UserRole, active bool) (uuid.UUID, string) {
	t.Helper()
	ctx := context.Background()

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     active,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Hour),
	}
	if err := repo.Session.Create(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	return user.ID, session.Token.String()
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthSessionPropagatesRole(t *testing.T) {
	repo := memory.NewRepository(memory.NewStore())
	log := zap.NewNop()
	adminID, adminToken := seedSessionUser(t, repo, "owner@example.com", entity.RoleAdmin, true)

	var gotID uuid.UUID
	var gotRole string
	handler := AuthSession(repo.Session, repo.User, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := doRequest(handler, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != adminID {
		t.Errorf("context user = %s, want %s", gotID, adminID)
	}
	if gotRole != string(entity.RoleAdmin) {
		t.Errorf("context role = %q, want %q", gotRole, entity.RoleAdmin)
	}

	if rec := doRequest(handler, uuid.New().String()); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown token status = %d, want 401", rec.Code)
	}
	if rec := doRequest(handler, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token status = %d, want 401", rec.Code)
	}
}

func TestAuthSessionRejectsDisabledUser(t *testing.T) {
	repo := memory.NewRepository(memory.NewStore())
	log := zap.NewNop()
	_, token := seedSessionUser(t, repo, "gone@example.com", entity.RoleMember, false)

	handler := AuthSession(repo.Session, repo.User, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if rec := doRequest(handler, token); rec.Code != http.StatusUnauthorized {
		t.Errorf("disabled user status = %d, want 401", rec.Code)
	}
}

func TestAdminGate(t *testing.T) {
	repo := memory.NewRepository(memory.NewStore())
	log := zap.NewNop()
	_, adminToken := seedSessionUser(t, repo, "owner@example.com", entity.RoleAdmin, true)
	_, memberToken := seedSessionUser(t, repo, "mina@example.com", entity.RoleMember, true)

	handler := AuthSession(repo.Session, repo.User, log)(
		Admin(repo.User, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	if rec := doRequest(handler, adminToken); rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
	if rec := doRequest(handler, memberToken); rec.Code != http.StatusForbidden {
		t.Errorf("member status = %d, want 403", rec.Code)
	}
}
