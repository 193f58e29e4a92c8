package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// ErrInvalidCredentials deliberately hides whether the username or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Store     *store.Store
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthService(st *store.Store, jwtSecret string) *AuthService {
	return &AuthService{
		Store:     st,
		JWTSecret: []byte(jwtSecret),
		TokenTTL:  24 * time.Hour,
	}
}

// Login verifies the password and issues a signed token carrying the
// user id and role.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user *models.User
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		user, err = tx.UserByUsername(username)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, user, nil
}

type UserInput struct {
	Username string
	Password string
	Name     string
	Role     models.UserRole
}

func (s *AuthService) CreateUser(in UserInput) (*models.User, error) {
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", store.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Username: in.Username,
		Password: string(hash),
		Name:     in.Name,
		Role:     in.Role,
	}
	err = s.Store.RunTransaction(func(tx *store.Tx) error {
		return tx.CreateUser(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	var out []models.User
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.ListUsers()
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
