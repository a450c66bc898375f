package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and access tokens
type AuthService struct {
	db            *gorm.DB
	jwtSecret     string
	signingMethod jwt.SigningMethod
	tokenTTL      time.Duration
	now           func() time.Time
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates a new AuthService. An unknown algorithm falls back to HS256.
func NewAuthService(db *gorm.DB, jwtSecret, algorithm string, tokenTTL time.Duration) *AuthService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &AuthService{
		db:            db,
		jwtSecret:     jwtSecret,
		signingMethod: method,
		tokenTTL:      tokenTTL,
		now:           time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a hashed password
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// the unique index wins when two registrations race past the pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login verifies the password and returns the user
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GenerateToken signs {sub, email, exp} for user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(s.signingMethod, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature and expiry. Every failure is ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{s.signingMethod.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserByID loads a user by primary key
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Authenticate resolves a bearer token to its stored user
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, claims.Subject)
}
