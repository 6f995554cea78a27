package handlers

import (
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes. Register and login are
// public; the current-user route sits behind the auth middleware.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", authRequired, h.HandleMe)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	user, token, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Server error during registration")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles user login and issues a session token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Server error during login")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// HandleMe returns the identity behind the current token.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.authService.GetUserByID(currentUserID(c))
	if err != nil {
		return respondError(c, err, "Server error while fetching user data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.Public(),
	})
}
