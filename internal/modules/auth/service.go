package auth

import (
	"context"
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	errEmailTaken         = errors.New("admin with this email already exists")
	errInvalidCredentials = errors.New("invalid email or password")
	errInactive           = errors.New("account is inactive")
)

type Service struct {
	db     *gorm.DB
	tokens *jwt.Manager
}

func NewService(db *gorm.DB, tokens *jwt.Manager) *Service {
	return &Service{db: db, tokens: tokens}
}

// Signup hashes the password and creates the admin. The unique index on email
// is the source of truth for duplicates; the pre-check just gives the common
// case a friendlier path.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) (*models.AdminModel, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AdminModel{}).
		Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := dto.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin := models.AdminModel{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hash),
		Role:     role,
		Status:   models.AdminActive,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		var mysqlErr *mysqlDriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, errEmailTaken
		}
		return nil, err
	}
	return &admin, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the same error so responses cannot be used to
// enumerate accounts.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (string, *models.AdminModel, error) {
	var admin models.AdminModel
	err := s.db.WithContext(ctx).Where("email = ?", dto.Email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}

	if !admin.IsActive() {
		return "", nil, errInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(dto.Password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	token, err := s.tokens.Sign(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// GetByID loads an admin. Returns (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*models.AdminModel, error) {
	var admin models.AdminModel
	if err := s.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
