package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/models"
)

const ticketIssuer = "doctor-booking"

// TicketClaims is the confirmation view's state: the finalized appointment
// with the doctor and location it was booked for.
type TicketClaims struct {
	Appointment models.AppointmentRecord  `json:"appointment"`
	Doctor      models.Doctor             `json:"doctor"`
	Location    models.LocationDescriptor `json:"location"`
	jwt.RegisteredClaims
}

// IssueTicket signs the confirmation state of a submitted booking.
func IssueTicket(rec models.AppointmentRecord, doctor models.Doctor, loc models.LocationDescriptor, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := &TicketClaims{
		Appointment: rec,
		Doctor:      doctor,
		Location:    loc,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ticketIssuer,
			Subject:   strconv.Itoa(rec.AppointmentNumber),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.TicketExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.TicketSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign ticket: %w", err)
	}
	return tokenString, nil
}

// ParseTicket validates a ticket and returns its claims.
func ParseTicket(tokenString string, secretKey string) (*TicketClaims, error) {
	claims := &TicketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(ticketIssuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid ticket")
	}

	return claims, nil
}
