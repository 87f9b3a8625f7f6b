package services

import (
	"errors"

	"github.com/gestor-dev/gestor/internal/auth"
	"github.com/gestor-dev/gestor/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername is raised by the unique index on users.name;
	// there is no separate existence pre-check.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db     *gorm.DB
	tokens *auth.Manager
}

func NewAuthService(gdb *gorm.DB, tokens *auth.Manager) *AuthService {
	return &AuthService{db: gdb, tokens: tokens}
}

// Register creates the account and issues its first token.
func (s *AuthService) Register(username, password, email, role string) (models.User, string, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:         username,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, "", ErrDuplicateUsername
		}
		return models.User{}, "", err
	}

	token, err := s.tokens.Generate(user.Name)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(username, password string) (models.User, string, error) {
	var user models.User

	err := s.db.Where("name = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Name)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
