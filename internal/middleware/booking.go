package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/session"
	"doctor-booking-server/internal/utils"
)

const (
	sessionKey = "bookingSession"
	ticketKey  = "ticket"
)

// SessionMiddleware resolves the :sessionId path parameter to an open
// booking session.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("sessionId"))
		if err != nil {
			utils.BadRequest(c, "Invalid booking session ID format")
			c.Abort()
			return
		}

		sess, err := store.Get(id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				utils.NotFound(c, "Booking session not found or expired")
			} else {
				utils.InternalServerError(c, err.Error())
			}
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// TicketMiddleware validates the confirmation ticket, taken from a Bearer
// Authorization header or the ticket query parameter.
func TicketMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("ticket")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				utils.Unauthorized(c, "Invalid authorization header format")
				c.Abort()
				return
			}
			tokenString = parts[1]
		}

		if tokenString == "" {
			utils.Unauthorized(c, "Confirmation ticket required")
			c.Abort()
			return
		}

		claims, err := utils.ParseTicket(tokenString, cfg.TicketSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid ticket: "+err.Error())
			c.Abort()
			return
		}

		c.Set(ticketKey, claims)
		c.Next()
	}
}

// Helper function to get the booking session from context
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// Helper function to get the confirmation ticket from context
func GetTicketFromContext(c *gin.Context) (*utils.TicketClaims, bool) {
	v, exists := c.Get(ticketKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.TicketClaims)
	return claims, ok
}
