package auth

import (
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SignupRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role,omitempty"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id may only contain letters, numbers, dots, underscores, and hyphens (max 50)",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters long",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if r.Role != "" && !user.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	TokenType            string `json:"token_type"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type SignupResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}
