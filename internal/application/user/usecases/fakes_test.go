package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/infrastructure/auth"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint

	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(u *user.User) *user.User {
	r.users[u.ID()] = u
	if u.ID() >= r.nextID {
		r.nextID = u.ID() + 1
	}
	return u
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetByCreatorAccount(ctx context.Context, accountID string) (*user.User, error) {
	for _, u := range r.users {
		if u.CreatorAccountID() != nil && *u.CreatorAccountID() == accountID {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeEmailSender struct {
	welcomeSent         int
	resetTokens         []string
	passwordChangedSent int
	sendErr             error
}

func (s *fakeEmailSender) SendWelcomeEmail(to, displayName string) error {
	s.welcomeSent++
	return s.sendErr
}

func (s *fakeEmailSender) SendPasswordResetEmail(to, token string) error {
	s.resetTokens = append(s.resetTokens, token)
	return s.sendErr
}

func (s *fakeEmailSender) SendPasswordChangedEmail(to string) error {
	s.passwordChangedSent++
	return s.sendErr
}

type fakeTokenService struct {
	generateErr error
}

func (s *fakeTokenService) Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &auth.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
		ExpiresIn:    900,
	}, nil
}

func (s *fakeTokenService) Verify(tokenString string) (*auth.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeAuditRepo struct {
	entries []*audit.Entry
}

func (r *fakeAuditRepo) Insert(ctx context.Context, e *audit.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func testRecorder() (*auditapp.Recorder, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return auditapp.NewRecorder(repo, testLogger()), repo
}
