package user

import (
	"context"
	"errors"
	"testing"
)

type fakeUserRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return account, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return account, nil
}

func (r *fakeUserRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	account, err := svc.Register(context.Background(), "  Alex@Example.COM ", " Alex ", "correct horse")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.Email != "alex@example.com" {
		t.Fatalf("expected email normalized, got %q", account.Email)
	}
	if account.Name != "Alex" {
		t.Fatalf("expected name trimmed, got %q", account.Name)
	}
	if account.PasswordHash == "" || account.PasswordHash == "correct horse" {
		t.Fatalf("expected password hashed")
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	cases := []struct {
		name     string
		email    string
		userName string
		password string
		want     error
	}{
		{"blank email", "  ", "Alex", "longenough", ErrEmailRequired},
		{"email without at", "not-an-email", "Alex", "longenough", ErrEmailRequired},
		{"blank name", "alex@example.com", " ", "longenough", ErrNameRequired},
		{"blank password", "alex@example.com", "Alex", "", ErrPasswordRequired},
		{"short password", "alex@example.com", "Alex", "short", ErrPasswordTooShort},
	}
	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.email, tc.userName, tc.password)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), "alex@example.com", "Alex", "longenough"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.Register(context.Background(), "ALEX@example.com", "Other", "longenough")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), "alex@example.com", "Alex", "longenough")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	account, err := svc.Login(context.Background(), "alex@example.com", "longenough")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.ID != created.ID {
		t.Fatalf("expected account %s, got %s", created.ID, account.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), "alex@example.com", "Alex", "longenough"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.Login(context.Background(), "alex@example.com", "wrong password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
