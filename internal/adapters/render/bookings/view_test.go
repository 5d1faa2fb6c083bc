package bookings

import (
	"testing"

	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPopulatedList(t *testing.T) {
	output, err := Render(application.PopulatedOutcome([]domain.BookingRecord{
		{Source: "NYC", Destination: "LA", DistanceKm: 2800, Fare: 4200},
		{Source: "LA", Destination: "SF", DistanceKm: 610.5, Fare: 915.756},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "bookings: 2")
	assert.Contains(t, output, "From NYC to LA")
	assert.Contains(t, output, "Distance: 2800.00 km")
	assert.Contains(t, output, "Fare: $4200.00")
	assert.Contains(t, output, "From LA to SF")
	assert.Contains(t, output, "Distance: 610.50 km")
	assert.Contains(t, output, "Fare: $915.76")
}

func TestRenderEmptyAndLoadingAreDistinct(t *testing.T) {
	empty, err := Render(application.EmptyOutcome())
	require.NoError(t, err)
	assert.Contains(t, empty, "No bookings yet.")

	loading, err := Render(application.LoadingOutcome())
	require.NoError(t, err)
	assert.Contains(t, loading, "Loading bookings...")

	assert.NotEqual(t, empty, loading)
}

func TestRenderErrorCarriesMessage(t *testing.T) {
	output, err := Render(application.FailedOutcome("Failed to load bookings"))
	require.NoError(t, err)
	assert.Contains(t, output, "Error loading bookings: Failed to load bookings")
}

func TestRenderZeroRecordsCollapsesToEmpty(t *testing.T) {
	output, err := Render(application.PopulatedOutcome(nil))
	require.NoError(t, err)
	assert.Contains(t, output, "No bookings yet.")
	assert.NotContains(t, output, "bookings: 0")
}
