package helper

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"quentinhas/config"
	"quentinhas/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
)

// Authenticator checks the admin login. There is a single shared credential.
type Authenticator interface {
	Authenticate(username, password string) error
}

// StaticAuthenticator compares against ADMIN_LOGIN / ADMIN_PASSWORD. The
// password may be stored as a bcrypt hash.
type StaticAuthenticator struct {
	Username string
	Password string
}

var Admin Authenticator = NewStaticAuthenticator()

func NewStaticAuthenticator() StaticAuthenticator {
	return StaticAuthenticator{
		Username: config.ConfigOr("ADMIN_LOGIN", "admin"),
		Password: config.Config("ADMIN_PASSWORD"),
	}
}

func (a StaticAuthenticator) Authenticate(username, password string) error {
	if a.Password == "" {
		return ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	var passOK bool
	if isBcryptHash(a.Password) {
		passOK = CheckPasswordHash(password, a.Password)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	}
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func jwtSecret() ([]byte, error) {
	secret := config.Config("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return []byte(secret), nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	return token.SignedString(secret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret()
	})
}

// GetAdminFromToken reads the claims stored by middleware.Protected.
func GetAdminFromToken(c *fiber.Ctx) model.TokenClaim {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return model.TokenClaim{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}
	username, _ := claims["username"].(string)
	return model.TokenClaim{Username: username}
}
