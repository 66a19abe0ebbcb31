package authControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "github.com/carlosbackdev/moto-gear-avenue/auth"
	"github.com/carlosbackdev/moto-gear-avenue/config"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/services"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

// POST /auth/register
func Register(auth *services.AuthService, registry *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email           string `json:"email" binding:"required,email"`
			Password        string `json:"password" binding:"required"`
			ConfirmPassword string `json:"confirmPassword" binding:"required"`
			FullName        string `json:"fullName" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Revisa los campos del formulario"})
			return
		}
		// Client-side validation: no round-trip for obviously bad input.
		if len(input.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La contraseña debe tener al menos 6 caracteres"})
			return
		}
		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Las contraseñas no coinciden"})
			return
		}

		resp, err := auth.Register(c.Request.Context(), models.RegisterRequest{
			Email:    input.Email,
			Password: input.Password,
			FullName: input.FullName,
		})
		if err != nil {
			log.Printf("auth: register failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo crear la cuenta"})
			return
		}

		user := resp.ResolvedUser()
		registry.Attach(resp.Token, &user)
		c.JSON(http.StatusCreated, gin.H{"token": resp.Token, "user": user})
	}
}

// POST /auth/login
func Login(auth *services.AuthService, registry *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.LoginRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son obligatorios"})
			return
		}

		resp, err := auth.Login(c.Request.Context(), input)
		if err != nil {
			log.Printf("auth: login failed for %s: %v", input.Email, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
			return
		}

		user := resp.ResolvedUser()
		session := registry.Attach(resp.Token, &user)
		if err := session.Cart.Load(c.Request.Context()); err != nil {
			log.Printf("auth: cart load after login: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"token": resp.Token, "user": user})
	}
}

// POST /auth/google
func GoogleLogin(verifier *googleauth.GoogleVerifier, auth *services.AuthService, registry *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el token de Google"})
			return
		}

		req, err := verifier.Verify(c.Request.Context(), input.IDToken)
		if err != nil {
			log.Printf("auth: google token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de Google no válido"})
			return
		}

		resp, err := auth.GoogleLogin(c.Request.Context(), *req)
		if err != nil {
			log.Printf("auth: google exchange failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo iniciar sesión con Google"})
			return
		}

		user := resp.ResolvedUser()
		session := registry.Attach(resp.Token, &user)
		if err := session.Cart.Load(c.Request.Context()); err != nil {
			log.Printf("auth: cart load after google login: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"token": resp.Token, "user": user})
	}
}

// POST /auth/logout
func Logout(registry *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := middleware.BearerToken(c); token != "" {
			registry.Drop(token)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
	}
}

// POST /auth/change-password
//
// The backend flow takes only an email and a new password, with no proof
// the caller owns the mailbox. It stays off unless explicitly enabled.
func ChangePassword(users *services.UsersService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AllowInsecurePasswordReset {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "La recuperación de contraseña no está disponible"})
			return
		}

		var input struct {
			Email           string `json:"email" binding:"required,email"`
			NewPassword     string `json:"newPassword" binding:"required"`
			ConfirmPassword string `json:"confirmPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Revisa los campos del formulario"})
			return
		}
		if len(input.NewPassword) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La contraseña debe tener al menos 6 caracteres"})
			return
		}
		if input.NewPassword != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Las contraseñas no coinciden"})
			return
		}

		err := users.ChangePassword(c.Request.Context(), models.ChangePasswordRequest{
			Email:       input.Email,
			NewPassword: input.NewPassword,
		})
		if err != nil {
			log.Printf("auth: change password failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo cambiar la contraseña"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
	}
}
