package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Akshat190/qr-main/internal/entity"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Claims carry the identity the auth middleware injects before owner-level
// operations run.
type Claims struct {
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

type UserService struct {
	userStore UserStore
	jwtSecret []byte
}

// NewUserService creates a new instance of UserService.
func NewUserService(userStore UserStore, jwtSecret string) *UserService {
	return &UserService{
		userStore: userStore,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a user and returns it with a fresh session token. Owners
// must name their restaurant; each owner account gets its own restaurant id
// that scopes every menu item and order it manages.
func (s *UserService) Register(ctx context.Context, email, password, role, restaurantName string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", entity.ErrInvalidUser)
	}
	if role != entity.RoleOwner && role != entity.RoleCustomer {
		return nil, "", fmt.Errorf("%w: unknown role %q", entity.ErrInvalidUser, role)
	}
	if role == entity.RoleOwner && restaurantName == "" {
		return nil, "", fmt.Errorf("%w: restaurant name is required for owners", entity.ErrInvalidUser)
	}

	existing, err := s.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking existing user")
		return nil, "", err
	}
	if existing != nil {
		return nil, "", entity.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if role == entity.RoleOwner {
		user.RestaurantID = uuid.NewString()
		user.RestaurantName = restaurantName
	}

	created, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, "", err
	}

	token, err := s.issueToken(created)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Login verifies the password and returns a session token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := s.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting user by email")
		return nil, "", err
	}
	if user == nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.userStore.GetUserByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}
	return user, nil
}

// ParseToken validates a signed token and returns its claims.
func (s *UserService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, entity.ErrInvalidCredentials
	}
	return claims, nil
}

func (s *UserService) issueToken(user *entity.User) (string, error) {
	claims := &Claims{
		Role:         user.Role,
		RestaurantID: user.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(s.jwtSecret)
}
