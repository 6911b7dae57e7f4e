package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpath-ph/assessment-api/config"
	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	Register(req dto.RegisterRequest, callerRole string) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Me(userID uint) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest, callerRole string) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	// Only an authenticated admin can mint another admin.
	role := model.RoleStudent
	if req.Role == model.RoleAdmin && callerRole == model.RoleAdmin {
		role = model.RoleAdmin
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		Role:         role,
	}
	if req.Birthdate != nil && *req.Birthdate != "" {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("birthdate must be YYYY-MM-DD: %w", ErrValidation)
		}
		user.Birthdate = &birthdate
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	log.Info().Str("email", user.Email).Str("role", user.Role).Msg("User registered")

	return s.authResponse("Registration successful", user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	return s.authResponse("Login successful", user)
}

func (s *authService) Me(userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	var out dto.UserDTO
	if err := copier.Copy(&out, user); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *authService) authResponse(message string, user *model.User) (*dto.AuthResponse, error) {
	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	var userDTO dto.UserDTO
	if err := copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Message: message, Token: token, User: userDTO}, nil
}

func (s *authService) signToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Duration(s.cfg.JWT.ExpiryHour) * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
}
