package auth

import (
	"errors"

	"github.com/metrika-dev/metrika/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every login failure so callers
	// cannot distinguish unknown users from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore is the lookup capability the auth layer depends on.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies a username/password pair against the store.
func Authenticate(store UserStore, username, password string) (*models.User, error) {
	user, err := store.FindByUsername(username)

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Disabled {
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdminUser seeds the configured admin account when it does not exist.
// A blank password means no seeding, which is the safe production default.
func EnsureAdminUser(database *gorm.DB, username, password string, logger *zap.Logger) error {
	if password == "" {
		return nil
	}

	var existing models.User

	err := database.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		FullName:     "System Administrator",
		PasswordHash: hash,
	}

	if err := database.Create(&user).Error; err != nil {
		return err
	}

	logger.Info("seeded admin user", zap.String("username", username))
	return nil
}
