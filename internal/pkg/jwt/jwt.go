package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(employeeID string, name string, role user.Role) (token string, expiresIn int64, err error)
	GenerateSSEToken(employeeID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (employeeID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	sseTokenExpirationTime    string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, sseTokenExpirationTime string) *JWTService {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		sseTokenExpirationTime:    sseTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

// GenerateAccessToken returns a signed access token and its lifetime in seconds.
func (j *JWTService) GenerateAccessToken(employeeID string, name string, role user.Role) (token string, expiresIn int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, int64(expDuration.Seconds()), nil
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(employeeID string) (token string, expiresIn int, err error) {
	expDuration, err := time.ParseDuration(j.sseTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := j.now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "sse",
		"exp":         expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(expDuration.Seconds()), nil
}

// ValidateSSEToken validates an SSE token and returns the employee ID
func (j *JWTService) ValidateSSEToken(tokenString string) (employeeID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "sse" {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	employeeID, ok = idVal.(string)
	if !ok || employeeID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return employeeID, nil
}
