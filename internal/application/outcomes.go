package application

import "github.com/bnema/biketaxi-cli/internal/domain"

type RefreshState string

const (
	StateLoading   RefreshState = "loading"
	StateEmpty     RefreshState = "empty"
	StatePopulated RefreshState = "populated"
	StateError     RefreshState = "error"
)

func (s RefreshState) Valid() bool {
	switch s {
	case StateLoading, StateEmpty, StatePopulated, StateError:
		return true
	default:
		return false
	}
}

// Outcome is the terminal result of a booking-list refresh, consumed by the
// rendering layer. A refresh always fully replaces the displayed list.
type Outcome struct {
	State   RefreshState
	Records []domain.BookingRecord
	Message string
}

func LoadingOutcome() Outcome {
	return Outcome{State: StateLoading}
}

func EmptyOutcome() Outcome {
	return Outcome{State: StateEmpty}
}

func PopulatedOutcome(records []domain.BookingRecord) Outcome {
	if len(records) == 0 {
		return EmptyOutcome()
	}
	return Outcome{State: StatePopulated, Records: records}
}

func FailedOutcome(message string) Outcome {
	return Outcome{State: StateError, Message: message}
}
