package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	repo "github.com/cosmelog/cosme-review-api/internal/domain/repository"
	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
	"github.com/cosmelog/cosme-review-api/pkg/mailer"
	mailtpl "github.com/cosmelog/cosme-review-api/pkg/mailer/templates"
)

// EmailPublisher enqueues email jobs for the worker binary.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, v any) error
}

type UserService struct {
	Repo        repo.UserRepository
	JWT         *helpers.TokenManager
	Logger      *logrus.Logger
	Pub         EmailPublisher
	MailEnabled bool
}

func NewUserService(repo repo.UserRepository, jwt *helpers.TokenManager, logger *logrus.Logger, pub EmailPublisher, mailEnabled bool) *UserService {
	return &UserService{
		Repo:        repo,
		JWT:         jwt,
		Logger:      logger,
		Pub:         pub,
		MailEnabled: mailEnabled,
	}
}

// Register creates a user with a bcrypt password hash. The welcome email
// is queued best-effort; a broker outage never fails registration.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	u, err := entity.NewUser(name, email, password, helpers.HashPassword)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to hash password", err)
	}
	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, apperrors.NewValidation("Email already exists")
		}
		return nil, apperrors.NewInternal("Failed to save user", err)
	}
	_ = s.queueWelcomeEmail(ctx, u)
	return u, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same error so the response does not reveal
// which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternal("Failed to look up user", err)
	}
	if u == nil || !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, apperrors.NewInternal("Failed to generate token", err)
	}
	return token, exp, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list users", err)
	}
	return users, nil
}

func (s *UserService) queueWelcomeEmail(ctx context.Context, u *entity.User) error {
	if s.Pub == nil || !s.MailEnabled {
		return nil
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data: map[string]any{
			"Name":  u.Name,
			"Email": u.Email,
		},
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Pub.PublishJSON(c, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue welcome email failed")
		}
		return err
	}
	return nil
}
