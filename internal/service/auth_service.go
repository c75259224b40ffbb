package service

import (
	"context"
	"time"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.StaffProfileResponse, error)
	CreateStaff(ctx context.Context, email, name, password string, role entity.StaffRole) (*entity.StaffUser, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.StaffRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}

	accessTokenExpiry := time.Hour * 24

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(serverutils.JwtSecret())
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User:  toStaffProfile(user),
	}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.StaffProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.StaffRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	profile := toStaffProfile(user)
	return &profile, nil
}

// CreateStaff provisions a staff account. Exposed for seeding scripts rather
// than an API route.
func (s *authService) CreateStaff(ctx context.Context, email, name, password string, role entity.StaffRole) (*entity.StaffUser, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.StaffRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.StaffUser{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uow.StaffRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func toStaffProfile(u *entity.StaffUser) dto.StaffProfileResponse {
	return dto.StaffProfileResponse{
		Id:    u.Id,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
