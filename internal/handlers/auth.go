package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srinjoywork/Module-5/internal/dto"
	"github.com/srinjoywork/Module-5/internal/service"
	"github.com/srinjoywork/Module-5/internal/validation"
)

// AuthHandler handles register and login.
type AuthHandler struct {
	accountSvc *service.AccountService
	validate   *validation.Validator
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(accountSvc *service.AccountService, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{accountSvc: accountSvc, validate: validate}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Registration payload"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	// Validation runs before any store or hasher call: a rejected payload
	// has no side effects.
	if errs := h.validate.Register(req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "errors": errs})
		return
	}
	account, err := h.accountSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists with this email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:   "account created successfully",
		AccountID: account.ID.String(),
	})
}

// Login godoc
// @Summary      Login and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := h.validate.Login(req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "errors": errs})
		return
	}
	token, account, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "login successful",
		Token:     token,
		AccountID: account.ID.String(),
	})
}
