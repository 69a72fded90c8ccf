package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

const (
	maxLoginAttempts = 5
	merchantTokenTTL = 12 * time.Hour
)

// AuthService is the merchant auth gate: a password check against the studio
// record with an attempt counter and lockout after five failures. Successful
// logins are exchanged for a short-lived merchant token.
type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthService(db *gorm.DB, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret), logger: logger}
}

// MerchantLogin verifies the merchant password and returns a signed token.
// Each failure increments the attempt counter; the fifth failure locks the
// account and only a manual reset unlocks it.
func (s *AuthService) MerchantLogin(ctx context.Context, password string) (string, error) {
	var studio models.StudioInfo
	if err := s.db.WithContext(ctx).First(&studio).Error; err != nil {
		return "", &PersistenceError{Op: "load studio info", Err: err}
	}

	if studio.IsLocked {
		return "", ErrAccountLocked
	}

	if studio.MerchantPassword != password {
		studio.LoginAttempts++
		locked := studio.LoginAttempts >= maxLoginAttempts
		updates := map[string]interface{}{"login_attempts": studio.LoginAttempts, "is_locked": locked}
		if err := s.db.WithContext(ctx).Model(&studio).Updates(updates).Error; err != nil {
			return "", &PersistenceError{Op: "record login failure", Err: err}
		}
		s.logger.Warn("merchant login failed",
			zap.Int("attempts", studio.LoginAttempts),
			zap.Bool("locked", locked))
		if locked {
			return "", ErrAccountLocked
		}
		return "", fmt.Errorf("%w: %d attempts remaining", ErrInvalidCredentials, maxLoginAttempts-studio.LoginAttempts)
	}

	now := time.Now()
	updates := map[string]interface{}{"login_attempts": 0, "last_login_at": now}
	if err := s.db.WithContext(ctx).Model(&studio).Updates(updates).Error; err != nil {
		return "", &PersistenceError{Op: "record login", Err: err}
	}

	claims := jwt.MapClaims{
		"role": "merchant",
		"iat":  now.Unix(),
		"exp":  now.Add(merchantTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	s.logger.Info("merchant logged in")
	return token, nil
}

// VerifyMerchantToken checks the signature, expiry and merchant role of a
// token issued by MerchantLogin.
func (s *AuthService) VerifyMerchantToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "merchant" {
		return errors.New("not a merchant token")
	}
	return nil
}

// HasMerchantAccess reports whether the token grants merchant operations.
func (s *AuthService) HasMerchantAccess(tokenString string) bool {
	return s.VerifyMerchantToken(tokenString) == nil
}
