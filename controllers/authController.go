package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"garage-backend/config"
	"garage-backend/middlewares"
)

// AuthController implements the admin login: a configured username/password
// pair compared verbatim. The issued token is opaque to the client and no
// route currently requires it.
type AuthController struct {
	cfg config.Config
}

func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (ct *AuthController) Login(c *fiber.Ctx) error {
	var in loginInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	if in.Username != ct.cfg.AdminUsername || in.Password != ct.cfg.AdminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	token, err := ct.signToken(in.Username)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"message": "Login successful",
	})
}

func (ct *AuthController) signToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ct.cfg.JWTSecret))
}
