package auth

import (
	"strings"

	"satistakip-backend/internal/config"
	"satistakip-backend/internal/database"
	"satistakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"provider": user.Provider,
	}
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}
		if len(body.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre en az 6 karakter olmalı")
		}

		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Provider:     models.ProviderPassword,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"user":  userResponse(&user),
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		if user.PasswordHash == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Bu hesap Google ile açılmış, Google ile giriş yapın")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  userResponse(&user),
		})
	}
}

// POST /api/auth/google
// Federatif giriş: Google'dan alınan ID token doğrulanır, kullanıcı yoksa
// açılır, kendi JWT'miz üretilir. Kimlik doğrulamanın kendisi tamamen
// sağlayıcıya bırakılır.
func GoogleLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body GoogleLoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if strings.TrimSpace(body.IDToken) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "id_token zorunlu")
		}

		info, err := verifyGoogleIDToken(body.IDToken)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Google token doğrulanamadı")
		}

		email := strings.TrimSpace(strings.ToLower(info.Email))
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Google hesabında email bulunamadı")
		}

		var user models.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			// İlk giriş: kullanıcıyı aç
			user = models.User{
				Name:     info.Name,
				Email:    email,
				Provider: models.ProviderGoogle,
			}
			if user.Name == "" {
				user.Name = email
			}
			if err := database.DB.Create(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
			}
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  userResponse(&user),
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		var user models.User
		if userID, ok := userIDVal.(uint); ok {
			if err := database.DB.First(&user, userID).Error; err == nil {
				return c.JSON(userResponse(&user))
			}
		}

		return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı bulunamadı")
	}
}
