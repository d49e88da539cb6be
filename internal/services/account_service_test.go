package services

import (
	"context"
	"errors"
	"testing"

	"luxing/internal/models/db_models"
	"luxing/internal/models/request_models"
	"luxing/internal/repositories"
	"luxing/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	failAll bool
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.failAll {
		return errors.New("db down")
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Traveler",
		Email:       "t@example.com",
		Password:    "secret123",
	}
	if err := svc.CreateAccount(context.Background(), signUp); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	stored := repo.byEmail["t@example.com"]
	if stored == nil || stored.Role != "user" {
		t.Fatalf("stored=%+v", stored)
	}
	if stored.PasswordHash == "secret123" {
		t.Fatal("password stored in the clear")
	}

	token, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "t@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
}

func TestAccountService_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	req := request_models.SignUpRequest{DisplayName: "A", Email: "dup@example.com", Password: "secret123"}
	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("first CreateAccount: %v", err)
	}
	if err := svc.CreateAccount(context.Background(), req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("err=%v, want ErrEmailAlreadyExists", err)
	}
}

func TestAccountService_LoginFailures(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	_ = svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "B", Email: "b@example.com", Password: "secret123",
	})

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("err=%v, want ErrAccountNotFound", err)
	}
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "b@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}

	repo.failAll = true
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "b@example.com", Password: "secret123"}); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err=%v, want ErrDatabaseError", err)
	}
}
