package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

// Claims is the JWT payload. Status is embedded so the approval gate does not
// need a user lookup on every request; a freshly approved user re-logs-in.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Category string `json:"category,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error)
	CreateStaff(req dto.StaffCreateDTO) (*dto.UserResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error)
	ParseToken(tokenString string) (*Claims, error)
	GetProfile(userID uint) (*dto.UserResponseDTO, error)
	UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.UserResponseDTO, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: []byte(jwtSecret)}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		Category:     req.Category,
		Status:       model.StatusPending,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	log.Info().Uint("userID", user.ID).Str("category", user.Category).Msg("Student registered, pending approval")

	return toUserDTO(&user)
}

func (s *authService) CreateStaff(req dto.StaffCreateDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// Admin-created accounts skip the approval queue.
	user := model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       model.StatusApproved,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreateStaff: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return toUserDTO(&user)
}

func (s *authService) Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if user.Role != req.LoginType {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != model.StatusApproved {
		return nil, ErrAccountNotApproved
	}

	claims := Claims{
		UserID:   user.ID,
		Role:     user.Role,
		Status:   user.Status,
		Category: user.Category,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "user token",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	if err := s.userRepo.TouchLastActive(user.ID); err != nil {
		log.Warn().Err(err).Uint("userID", user.ID).Msg("Login: failed to update last active timestamp")
	}

	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponseDTO{Token: token, User: *userDTO}, nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *authService) GetProfile(userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return toUserDTO(user)
}

func (s *authService) UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return toUserDTO(user)
}

func toUserDTO(user *model.User) (*dto.UserResponseDTO, error) {
	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
