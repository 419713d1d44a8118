package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler gates the API behind a shared operator passphrase. There are no
// per-user accounts; whoever runs the registration desk holds the passphrase.
type AuthHandler struct {
	passphraseHash string
	jwtSecret      string
}

func NewAuthHandler(passphraseHash, jwtSecret string) *AuthHandler {
	return &AuthHandler{passphraseHash: passphraseHash, jwtSecret: jwtSecret}
}

type GateRequest struct {
	Passphrase string `json:"passphrase"`
}

func (h *AuthHandler) Gate(c *fiber.Ctx) error {
	var req GateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passphraseHash), []byte(req.Passphrase)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong passphrase"})
	}

	claims := jwt.MapClaims{
		"role": "operator",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not issue token"})
	}

	return c.JSON(fiber.Map{
		"message": "access granted",
		"token":   signed,
	})
}
