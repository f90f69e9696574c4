package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/ahmedxgouda/LittleLemon/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login verifies credentials and issues a JWT. Both failure paths return the
// same error so usernames cannot be probed.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}
