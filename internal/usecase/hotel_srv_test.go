package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHotelRepo struct {
	hotels map[uuid.UUID]*entity.Hotel
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{hotels: make(map[uuid.UUID]*entity.Hotel)}
}

func (f *fakeHotelRepo) Create(_ context.Context, hotel *entity.Hotel) error {
	cp := *hotel
	f.hotels[hotel.ID] = &cp
	return nil
}

func (f *fakeHotelRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok || h.UserID != userID {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHotelRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, h := range f.hotels {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeHotelRepo) Update(_ context.Context, hotel *entity.Hotel) error {
	cp := *hotel
	f.hotels[hotel.ID] = &cp
	return nil
}

func (f *fakeHotelRepo) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	h, ok := f.hotels[id]
	if !ok || h.UserID != userID {
		return false, nil
	}
	delete(f.hotels, id)
	return true, nil
}

func newHotelFixture(t *testing.T) (*hotelService, *fakeUserRepo, *entity.User) {
	t.Helper()

	users := newFakeUserRepo()
	user := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "alice@example.com",
	}
	require.NoError(t, users.Create(context.Background(), user))

	svc := &hotelService{
		repo: &repository.Repository{User: users, Hotel: newFakeHotelRepo()},
		log:  zap.NewNop(),
		now:  func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) },
	}
	return svc, users, user
}

func validHotelRequest(owner request.Owner) *request.CreateHotelRequest {
	price := 240.0
	return &request.CreateHotelRequest{
		Owner:        owner,
		Name:         "Hotel Mar Azul",
		CheckInDate:  "2026-05-01",
		CheckOutDate: "2026-05-05",
		Price:        &price,
		Country:      "Portugal",
		City:         "Lisbon",
	}
}

func TestHotelCreate(t *testing.T) {
	svc, _, user := newHotelFixture(t)
	ctx := context.Background()

	t.Run("by email", func(t *testing.T) {
		hotel, err := svc.Create(ctx, validHotelRequest(request.Owner{Email: "alice@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, user.ID, hotel.UserID)
		assert.Equal(t, "Hotel Mar Azul", hotel.Name)
	})

	t.Run("by userId", func(t *testing.T) {
		hotel, err := svc.Create(ctx, validHotelRequest(request.Owner{UserID: user.ID.String()}))
		require.NoError(t, err)
		assert.Equal(t, user.ID, hotel.UserID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.Create(ctx, validHotelRequest(request.Owner{Email: "nobody@example.com"}))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("no owner at all", func(t *testing.T) {
		_, err := svc.Create(ctx, validHotelRequest(request.Owner{}))
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing fields accumulate", func(t *testing.T) {
		_, err := svc.Create(ctx, &request.CreateHotelRequest{
			Owner: request.Owner{Email: "alice@example.com"},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Details, 6)
	})

	t.Run("negative price", func(t *testing.T) {
		req := validHotelRequest(request.Owner{Email: "alice@example.com"})
		bad := -1.0
		req.Price = &bad
		_, err := svc.Create(ctx, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Details[0], "non-negative")
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		req := validHotelRequest(request.Owner{Email: "alice@example.com"})
		req.CheckInDate = "2026-05-05"
		req.CheckOutDate = "2026-05-01"
		_, err := svc.Create(ctx, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Details[0], "after check_in_date")
	})
}

func TestHotelUpdateAndDelete(t *testing.T) {
	svc, _, _ := newHotelFixture(t)
	ctx := context.Background()
	owner := request.Owner{Email: "alice@example.com"}

	hotel, err := svc.Create(ctx, validHotelRequest(owner))
	require.NoError(t, err)

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, hotel.ID, &request.UpdateHotelRequest{Owner: owner})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "No fields provided for update", verr.Details[0])
	})

	t.Run("partial update", func(t *testing.T) {
		name := "Hotel Mar Azul Premium"
		updated, err := svc.Update(ctx, hotel.ID, &request.UpdateHotelRequest{Owner: owner, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, hotel.Price, updated.Price)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		name := "x"
		_, err := svc.Update(ctx, uuid.New(), &request.UpdateHotelRequest{Owner: owner, Name: &name})
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, hotel.ID, owner))
		assert.ErrorIs(t, svc.Delete(ctx, hotel.ID, owner), ErrHotelNotFound)
	})
}
