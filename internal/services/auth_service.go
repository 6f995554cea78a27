package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// AuthService handles registration, login and token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register validates the input, hashes the password and persists a new user.
// It returns the user together with a signed session token.
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	user := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	if err := validateStruct(user); err != nil {
		return nil, "", err
	}

	_, err := s.userRepo.GetByEmail(user.Email)
	if err == nil {
		return nil, "", apperrors.NewConflictError("User already exists with this email")
	}
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password produce the same error, so callers cannot enumerate users.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", apperrors.NewAuthError(invalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.NewAuthError(invalidCredentials)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUserByID resolves a user by ID. Backs the current-user endpoint.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ValidateToken parses and verifies a session token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperrors.NewAuthError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthError("Invalid or expired token")
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, apperrors.NewAuthError("Invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
