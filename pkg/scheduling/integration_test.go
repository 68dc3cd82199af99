package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/engine"
	testdb "github.com/interacai/flowcore/test/database"
)

// seedBookingFixtures inserts an active tenant with a 30-minute
// appointment type and returns their ids.
func seedBookingFixtures(ctx context.Context, t *testing.T, client *ent.Client) (tenantID, typeID string) {
	t.Helper()

	tn, err := client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Booking Test Clinic").
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(ctx)
	require.NoError(t, err)

	aptType, err := client.AppointmentType.Create().
		SetID(uuid.NewString()).
		SetTenantID(tn.ID).
		SetName("Consultation").
		SetDurationMinutes(30).
		Save(ctx)
	require.NoError(t, err)

	return tn.ID, aptType.ID
}

// TestBookRejectsOverlappingSlot tests that the transactional re-check
// refuses any overlap with a scheduled appointment, not just an
// identical start time.
func TestBookRejectsOverlappingSlot(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	tenantID, typeID := seedBookingFixtures(ctx, t, client)
	svc := NewService(client)

	startAt := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	first, err := svc.Book(ctx, tenantID, engine.BookingInput{
		AppointmentTypeID: typeID,
		StartAt:           startAt,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	_, err = svc.Book(ctx, tenantID, engine.BookingInput{
		AppointmentTypeID: typeID,
		StartAt:           startAt.Add(15 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrSlotTaken, "a half-overlapping start must collide")

	// The adjacent slot is still free.
	second, err := svc.Book(ctx, tenantID, engine.BookingInput{
		AppointmentTypeID: typeID,
		StartAt:           startAt.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// TestConcurrentBookingSingleWinner fires two simultaneous bookings for
// one slot and asserts exactly one lands. The loser blocks on the tenant
// row lock until the winner commits, then fails the overlap re-check; a
// plain read-then-insert would let both commit under READ COMMITTED.
func TestConcurrentBookingSingleWinner(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	tenantID, typeID := seedBookingFixtures(ctx, t, client)
	svc := NewService(client)

	startAt := time.Now().Add(48 * time.Hour).Truncate(time.Hour)

	const attempts = 2
	start := make(chan struct{})
	ids := make([]string, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			ids[i], errs[i] = svc.Book(ctx, tenantID, engine.BookingInput{
				AppointmentTypeID: typeID,
				StartAt:           startAt,
			})
		}(i)
	}
	close(start)
	wg.Wait()

	var booked, taken int
	for i := 0; i < attempts; i++ {
		switch {
		case errs[i] == nil:
			booked++
			assert.NotEmpty(t, ids[i])
		case errors.Is(errs[i], ErrSlotTaken):
			taken++
		default:
			t.Fatalf("unexpected booking error: %v", errs[i])
		}
	}
	assert.Equal(t, 1, booked, "exactly one concurrent booking may land")
	assert.Equal(t, 1, taken, "the loser must see ErrSlotTaken")

	count, err := client.Appointment.Query().
		Where(appointment.TenantID(tenantID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one appointment row occupies the slot")
}

// TestConcurrentBookingsDistinctTenants tests that the per-tenant
// serialization does not couple unrelated tenants: the same wall-clock
// slot books once per tenant.
func TestConcurrentBookingsDistinctTenants(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	tenantA, typeA := seedBookingFixtures(ctx, t, client)
	tenantB, typeB := seedBookingFixtures(ctx, t, client)
	svc := NewService(client)

	startAt := time.Now().Add(72 * time.Hour).Truncate(time.Hour)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, in := range []struct {
		tenantID string
		typeID   string
	}{{tenantA, typeA}, {tenantB, typeB}} {
		wg.Add(1)
		go func(i int, tenantID, typeID string) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, tenantID, engine.BookingInput{
				AppointmentTypeID: typeID,
				StartAt:           startAt,
			})
		}(i, in.tenantID, in.typeID)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
}
