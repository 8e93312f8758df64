package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

const (
	signupTokenTTL = 24 * time.Hour
	loginTokenTTL  = time.Hour
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("secret")
}

func signToken(userID uint, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// Signup registers a new account and issues a day-long token.
func (s *UserService) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the pre-check; the unique
		// constraint on email is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := signToken(user.ID, signupTokenTTL)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:    user,
		Token:   token,
		Message: "Welcome to StackIt",
	}, nil
}

// Login checks credentials and issues an hour-long token. Both an unknown
// email and a bad password return ErrInvalidCredentials so the caller cannot
// tell which field was wrong.
func (s *UserService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := signToken(user.ID, loginTokenTTL)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  user,
		Token: token,
	}, nil
}
