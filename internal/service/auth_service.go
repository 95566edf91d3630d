package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims extends JWT standard claims with the authenticated teacher.
type Claims struct {
	jwt.RegisteredClaims
	TeacherID int64  `json:"teacher_id"`
	Email     string `json:"email"`
}

// AuthService handles teacher authentication and JWT lifecycle.
type AuthService struct {
	cfg         *config.Config
	teacherRepo *repository.TeacherRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, teacherRepo *repository.TeacherRepository) *AuthService {
	return &AuthService{cfg: cfg, teacherRepo: teacherRepo}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies teacher credentials and returns a signed token plus the
// account. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.TeacherLoginResponse, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.CheckPassword(teacher.PasswordHash, password); err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(teacher)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.TeacherLoginResponse{Token: token, Teacher: *teacher}, nil
}

// GenerateToken creates a JWT for a teacher account.
func (s *AuthService) GenerateToken(teacher *model.TeacherAccount) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(teacher.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TeacherID: teacher.ID,
		Email:     teacher.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GetTeacher loads the teacher account behind a set of claims.
func (s *AuthService) GetTeacher(ctx context.Context, claims *Claims) (*model.TeacherAccount, error) {
	return s.teacherRepo.GetByID(ctx, claims.TeacherID)
}
