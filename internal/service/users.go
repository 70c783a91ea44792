package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
)

type UserRepository interface {
	Create(ctx context.Context, u *db.User) error
	FindByEmail(ctx context.Context, email string) (*db.User, error)
	FindByID(ctx context.Context, id uint64) (*db.User, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error
}

type TokenIssuer interface {
	Issue(userID uint64) (string, error)
}

type EditUser struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type Users struct {
	repo       UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     *zap.SugaredLogger
}

func NewUsers(repo UserRepository, tokens TokenIssuer, cfg *config.Config, l *zap.SugaredLogger) *Users {
	return &Users{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: cfg.BcryptCost,
		logger:     l,
	}
}

// Register creates the account and returns an access token for it.
func (s *Users) Register(ctx context.Context, email, pass string) (string, error) {
	hash, err := s.bcryptGen(pass)
	if err != nil {
		return "", errors.Wrap(err, "bcryptGen")
	}

	user := db.User{
		Email:    email,
		Password: hash,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	return s.tokens.Issue(user.ID)
}

func (s *Users) Login(ctx context.Context, email, pass string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.logger.Infow("login failed", "reason", "unknown email")
		return "", ErrLoginUserNotFound
	}

	if err := s.bcryptCheck(user.Password, pass); err != nil {
		s.logger.Infow("login failed", "reason", "password mismatch", "user_id", user.ID)
		return "", ErrLoginPasswordDoesNotMatch
	}

	return s.tokens.Issue(user.ID)
}

func (s *Users) Me(ctx context.Context, userID uint64) (*db.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Users) Edit(ctx context.Context, userID uint64, req EditUser) (*db.User, error) {
	fields := make(map[string]interface{}, 3)
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}

	if len(fields) != 0 {
		if err := s.repo.Update(ctx, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}

	return s.Me(ctx, userID)
}

func (s *Users) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), s.bcryptCost)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (s *Users) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
