package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/avlearn/authkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refreshToken exchanges a stored refresh token for a fresh pair.
// POST /api/v1/auth/refresh-token
func (s *Server) refreshToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	pair, err := s.tokens.Rotate(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrRefreshTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		default:
			s.logger.Error(c.Request.Context(), "refresh token rotation failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// verifyToken checks the bearer access token and returns its claims.
// GET /api/v1/auth/verify
func (s *Server) verifyToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, common.ErrTokenExpired) {
			reason = "token expired"
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      claims.UserID,
		"type":      claims.UserType,
		"sessionId": claims.SessionID,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
