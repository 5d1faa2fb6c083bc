package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BookingDraft is validated rider input for one submission attempt. It is
// never persisted; it lives only for the duration of the submit call.
type BookingDraft struct {
	Source      string
	Destination string
	DistanceKm  float64
}

// BookingRecord is owned by the booking service. The fare is always the
// value the server last returned; the client never computes or mutates it.
type BookingRecord struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distanceKm"`
	Fare        float64 `json:"fare"`
}

type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidDraft
}

// NewBookingDraft trims the locations and parses the raw distance input.
// It runs before any network call; a draft that fails here never produces
// a request.
func NewBookingDraft(source, destination, distanceRaw string) (BookingDraft, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)

	if source == "" {
		return BookingDraft{}, ValidationError{Message: "source is required"}
	}
	if destination == "" {
		return BookingDraft{}, ValidationError{Message: "destination is required"}
	}

	distance, err := strconv.ParseFloat(strings.TrimSpace(distanceRaw), 64)
	if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return BookingDraft{}, ValidationError{Message: fmt.Sprintf("distance %q is not a valid number", distanceRaw)}
	}
	if distance <= 0 {
		return BookingDraft{}, ValidationError{Message: "distance must be greater than zero"}
	}

	return BookingDraft{
		Source:      source,
		Destination: destination,
		DistanceKm:  distance,
	}, nil
}

// ValidateRegistration checks the registration fields locally. The remote
// service rejects blank fields too; checking here keeps an invalid form
// from ever issuing a request.
func ValidateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Message: "Name is required"}
	}
	if strings.TrimSpace(email) == "" {
		return ValidationError{Message: "Email is required"}
	}
	if strings.TrimSpace(password) == "" {
		return ValidationError{Message: "Password is required"}
	}
	return nil
}
