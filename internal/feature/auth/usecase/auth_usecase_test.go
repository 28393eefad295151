package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stock_analysis/internal/feature/auth/domain/entity"
	jwtmw "stock_analysis/internal/platform/jwt"
)

type mockUserRepository struct {
	createFunc          func(ctx context.Context, user *entity.User) error
	findByEmailFunc     func(ctx context.Context, email string) (*entity.User, error)
	updateLastLoginFunc func(ctx context.Context, id uint, at time.Time) error

	created         []entity.User
	lastLoginCalled bool
}

var _ UserRepository = (*mockUserRepository)(nil)

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.created = append(m.created, *user)
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	m.lastLoginCalled = true
	if m.updateLastLoginFunc != nil {
		return m.updateLastLoginFunc(ctx, id, at)
	}
	return nil
}

type mockJWTGenerator struct {
	generateFunc func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID, email)
	}
	return "token", nil
}

type mockInspector struct {
	inspectFunc func(token string) (jwtmw.TokenInfo, error)
}

func (m *mockInspector) Inspect(token string) (jwtmw.TokenInfo, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(token)
	}
	return jwtmw.TokenInfo{}, nil
}

type mockDenylist struct {
	revokeFunc  func(ctx context.Context, jti string, expiresAt time.Time) error
	revokedJTIs []string
}

func (m *mockDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	m.revokedJTIs = append(m.revokedJTIs, jti)
	if m.revokeFunc != nil {
		return m.revokeFunc(ctx, jti, expiresAt)
	}
	return nil
}

func newAuthUnderTest(users *mockUserRepository) (*authUsecase, *mockDenylist) {
	denylist := &mockDenylist{}
	return NewAuthUsecase(users, &mockJWTGenerator{}, &mockInspector{}, denylist), denylist
}

func TestSignup(t *testing.T) {
	t.Run("success hashes the password", func(t *testing.T) {
		users := &mockUserRepository{}
		uc, _ := newAuthUnderTest(users)

		if err := uc.Signup(context.Background(), "a@example.com", "password123"); err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
		if len(users.created) != 1 {
			t.Fatalf("expected one created user, got %d", len(users.created))
		}
		created := users.created[0]
		if created.Email != "a@example.com" {
			t.Errorf("email mismatch: %s", created.Email)
		}
		if created.Password == "password123" {
			t.Error("password must not be stored in plain text")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
	})

	t.Run("short password is rejected", func(t *testing.T) {
		users := &mockUserRepository{}
		uc, _ := newAuthUnderTest(users)

		if err := uc.Signup(context.Background(), "a@example.com", "short"); err == nil {
			t.Fatal("expected error for short password")
		}
		if len(users.created) != 0 {
			t.Error("rejected signup must not hit the repository")
		}
	})

	t.Run("duplicate email propagates", func(t *testing.T) {
		users := &mockUserRepository{
			createFunc: func(ctx context.Context, _ *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		uc, _ := newAuthUnderTest(users)

		err := uc.Signup(context.Background(), "a@example.com", "password123")
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	existing := &entity.User{ID: 42, Email: "a@example.com", Password: string(hashed)}

	t.Run("success returns token and records login time", func(t *testing.T) {
		users := &mockUserRepository{
			findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
		}
		uc, _ := newAuthUnderTest(users)

		token, err := uc.Login(context.Background(), "a@example.com", "password123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token == "" {
			t.Error("expected a token")
		}
		if !users.lastLoginCalled {
			t.Error("last login time should be updated")
		}
	})

	t.Run("wrong password yields generic error", func(t *testing.T) {
		users := &mockUserRepository{
			findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
		}
		uc, _ := newAuthUnderTest(users)

		_, err := uc.Login(context.Background(), "a@example.com", "wrongpass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user yields the same generic error", func(t *testing.T) {
		uc, _ := newAuthUnderTest(&mockUserRepository{})

		_, err := uc.Login(context.Background(), "ghost@example.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("last login update failure does not fail login", func(t *testing.T) {
		users := &mockUserRepository{
			findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
			updateLastLoginFunc: func(ctx context.Context, id uint, at time.Time) error {
				return errors.New("deadlock detected")
			},
		}
		uc, _ := newAuthUnderTest(users)

		if _, err := uc.Login(context.Background(), "a@example.com", "password123"); err != nil {
			t.Errorf("Login() error = %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)

	t.Run("revokes the token jti", func(t *testing.T) {
		denylist := &mockDenylist{}
		inspector := &mockInspector{
			inspectFunc: func(token string) (jwtmw.TokenInfo, error) {
				return jwtmw.TokenInfo{JTI: "abc-123", UserID: 42, ExpiresAt: expiresAt}, nil
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{}, inspector, denylist)

		if err := uc.Logout(context.Background(), "sometoken"); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
		if len(denylist.revokedJTIs) != 1 || denylist.revokedJTIs[0] != "abc-123" {
			t.Errorf("revoked jtis mismatch: %v", denylist.revokedJTIs)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		inspector := &mockInspector{
			inspectFunc: func(token string) (jwtmw.TokenInfo, error) {
				return jwtmw.TokenInfo{}, errors.New("signature is invalid")
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{}, inspector, &mockDenylist{})

		err := uc.Logout(context.Background(), "garbage")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("denylist failure propagates", func(t *testing.T) {
		denylist := &mockDenylist{
			revokeFunc: func(ctx context.Context, jti string, expiresAt time.Time) error {
				return errors.New("redis down")
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{}, &mockInspector{}, denylist)

		if err := uc.Logout(context.Background(), "sometoken"); err == nil {
			t.Fatal("expected error")
		}
	})
}
