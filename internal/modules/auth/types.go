package auth

import (
	"regexp"
	"strings"

	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/response"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignupDTO is the request body for registering an admin.
type SignupDTO struct {
	Name     string `json:"admin_name"`
	Email    string `json:"admin_email"`
	Password string `json:"admin_password"`
	Role     string `json:"admin_role"`
}

func (d *SignupDTO) validate() []response.FieldError {
	var errs []response.FieldError
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))

	if d.Name == "" {
		errs = append(errs, response.FieldError{Field: "admin_name", Message: "Name is required"})
	}
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, response.FieldError{Field: "admin_email", Message: "Valid email is required"})
	}
	if len(d.Password) < 6 {
		errs = append(errs, response.FieldError{Field: "admin_password", Message: "Password must be at least 6 characters long"})
	}
	if d.Role != "" && d.Role != models.RoleAdmin && d.Role != models.RoleSuperAdmin {
		errs = append(errs, response.FieldError{Field: "admin_role", Message: "Invalid role"})
	}
	return errs
}

// LoginDTO is the request body for logging in.
type LoginDTO struct {
	Email    string `json:"admin_email"`
	Password string `json:"admin_password"`
}

func (d *LoginDTO) validate() []response.FieldError {
	var errs []response.FieldError
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))

	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, response.FieldError{Field: "admin_email", Message: "Valid email is required"})
	}
	if d.Password == "" {
		errs = append(errs, response.FieldError{Field: "admin_password", Message: "Password is required"})
	}
	return errs
}

// adminSummary is the admin shape embedded in auth responses.
type adminSummary struct {
	ID     string `json:"admin_id"`
	Name   string `json:"admin_name"`
	Email  string `json:"admin_email"`
	Role   string `json:"admin_role"`
	Status string `json:"admin_status"`
}

func toSummary(a *models.AdminModel) adminSummary {
	return adminSummary{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Status: a.Status,
	}
}
