package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/pkg/jwt"
	"github.com/hrapp/hr-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Options carries signup policy.
type Options struct {
	AllowSignup      bool
	DefaultLeaveDays float64
	Now              func() time.Time
}

type AuthServiceImpl struct {
	tx postgresql.Transactor
	employee.EmployeeRepository
	jwt.Service
	opts Options
}

func NewAuthService(tx postgresql.Transactor, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, opts Options) auth.AuthService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		opts:               opts,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	principal := emp.SessionUser()
	token, expiresIn, err := a.Service.GenerateAccessToken(emp.EmployeeID, emp.Name, principal.EffectiveRole())
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		TokenType:            "bearer",
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	if !a.opts.AllowSignup {
		return auth.SignupResponse{}, auth.ErrSignupDisabled
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		exists, err := a.EmployeeRepository.ExistsByID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmployeeIDExists
		}

		leaveDays := a.opts.DefaultLeaveDays
		hireDate := a.opts.Now()
		newEmployee := employee.Employee{
			EmployeeID:     req.EmployeeID,
			Name:           req.Name,
			PasswordHash:   hashed,
			HireDate:       &hireDate,
			Status:         employee.StatusActive,
			TotalLeaveDays: &leaveDays,
		}
		if req.Role != "" {
			role := req.Role
			newEmployee.Role = &role
		}

		created, err = a.EmployeeRepository.Create(txCtx, newEmployee)
		return err
	})
	if err != nil {
		return auth.SignupResponse{}, err
	}

	return auth.SignupResponse{EmployeeID: created.EmployeeID, Name: created.Name}, nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context, employeeID string) (user.User, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return user.User{}, auth.ErrInvalidToken
		}
		return user.User{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp.SessionUser(), nil
}
