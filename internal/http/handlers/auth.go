package handlers

import (
	"net/http"
	"time"

	"bustms/internal/http/middleware"
	"bustms/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const operatorTokenTTL = 12 * time.Hour

type tokenRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/token
func (h Handlers) IssueToken(c *gin.Context) {
	if !h.Env.OperatorAuthEnabled() {
		respondError(c, http.StatusServiceUnavailable, "unavailable", "operator auth not configured")
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload")
		return
	}

	reqID := middleware.GetRequestID(c)
	if err := bcrypt.CompareHashAndPassword([]byte(h.Env.OperatorPasswordHash), []byte(req.Password)); err != nil {
		utils.LogEvent(reqID, "auth", "issue_token", "password mismatch")
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong password")
		return
	}

	expires := time.Now().Add(operatorTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": middleware.OperatorRole,
		"iat":  time.Now().Unix(),
		"exp":  expires.Unix(),
	})
	signed, err := token.SignedString([]byte(h.Env.JWTSecret))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to sign token")
		return
	}

	utils.LogEvent(reqID, "auth", "issue_token", "operator token issued")
	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"expires_at": expires.UTC().Format(time.RFC3339),
	})
}
