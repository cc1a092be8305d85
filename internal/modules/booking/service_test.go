package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tourista/internal/domain"
)

// Mock collaborators

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingStore) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) ListByUser(ctx context.Context, userID int64, productType *domain.ProductType) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, productType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockCatalog) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockCatalog) GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Excursion), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotifier) NotifyBookingCanceled(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func TestService_CreateBooking_Hotel(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)

	cat.On("GetHotel", mock.Anything, int64(7)).Return(&domain.Hotel{
		ID:             7,
		PricePerNight:  decimal.RequireFromString("100"),
		AvailableRooms: 5,
	}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotifier)
	notifs.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(store, cat, notifs)

	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HotelID:  ptrI64(7),
		CheckIn:  ptrStr("2024-06-01"),
		CheckOut: ptrStr("2024-06-04"),
		Guests:   ptrInt(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, int64(42), b.UserID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("600")), "got %s", b.TotalPrice)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", b.Reference.String())
	store.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestService_CreateBooking_Tour(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)

	cat.On("GetTour", mock.Anything, int64(3)).Return(&domain.Tour{
		ID:    3,
		Price: decimal.RequireFromString("1000"),
	}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(store, cat, nil)

	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		TourID: ptrI64(3),
		Guests: ptrInt(3),
	})

	require.NoError(t, err)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("3000")), "got %s", b.TotalPrice)
	assert.Nil(t, b.Stay)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_CreateBooking_Excursion(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)

	cat.On("GetExcursion", mock.Anything, int64(11)).Return(&domain.Excursion{
		ID:    11,
		Price: decimal.RequireFromString("25.50"),
	}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(store, cat, nil)

	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		ExcursionID: ptrI64(11),
		Guests:      ptrInt(2),
	})

	require.NoError(t, err)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("51.00")), "got %s", b.TotalPrice)
}

func TestService_CreateBooking_ValidationStopsEverything(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)
	service := NewService(store, cat, nil)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HotelID: ptrI64(1),
		TourID:  ptrI64(2),
	})

	assert.ErrorIs(t, err, ErrProductSelection)
	// No snapshot, no persistence, no inventory mutation on invalid input.
	cat.AssertNotCalled(t, "GetHotel", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_InsufficientCapacity(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)

	cat.On("GetHotel", mock.Anything, int64(7)).Return(&domain.Hotel{
		ID:             7,
		PricePerNight:  decimal.RequireFromString("100"),
		AvailableRooms: 1,
	}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(domain.ErrInsufficientCapacity)

	notifs := new(MockNotifier)
	service := NewService(store, cat, notifs)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HotelID:  ptrI64(7),
		CheckIn:  ptrStr("2024-06-01"),
		CheckOut: ptrStr("2024-06-02"),
		Guests:   ptrInt(4),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	notifs.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_UnknownHotel(t *testing.T) {
	store := new(MockBookingStore)
	cat := new(MockCatalog)

	cat.On("GetHotel", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	service := NewService(store, cat, nil)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HotelID:  ptrI64(404),
		CheckIn:  ptrStr("2024-06-01"),
		CheckOut: ptrStr("2024-06-02"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CancelBooking(t *testing.T) {
	store := new(MockBookingStore)

	confirmed := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingConfirmed}
	canceled := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingCanceled}

	store.On("GetByID", mock.Anything, int64(5)).Return(confirmed, nil)
	store.On("Cancel", mock.Anything, int64(5)).Return(canceled, nil)

	notifs := new(MockNotifier)
	notifs.On("NotifyBookingCanceled", mock.Anything, canceled).Return(nil)

	service := NewService(store, new(MockCatalog), notifs)

	b, err := service.CancelBooking(context.Background(), 42, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCanceled, b.Status)
	store.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestService_CancelBooking_Forbidden(t *testing.T) {
	store := new(MockBookingStore)
	store.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42, Status: domain.BookingConfirmed,
	}, nil)

	service := NewService(store, new(MockCatalog), nil)

	_, err := service.CancelBooking(context.Background(), 1000, 5)

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestService_CancelBooking_AlreadyCanceled(t *testing.T) {
	store := new(MockBookingStore)
	store.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42, Status: domain.BookingCanceled,
	}, nil)
	store.On("Cancel", mock.Anything, int64(5)).Return(nil, domain.ErrAlreadyCanceled)

	notifs := new(MockNotifier)
	service := NewService(store, new(MockCatalog), notifs)

	_, err := service.CancelBooking(context.Background(), 42, 5)

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
	notifs.AssertNotCalled(t, "NotifyBookingCanceled", mock.Anything, mock.Anything)
}

func TestService_CancelBooking_NotFound(t *testing.T) {
	store := new(MockBookingStore)
	store.On("GetByID", mock.Anything, int64(77)).Return(nil, domain.ErrNotFound)

	service := NewService(store, new(MockCatalog), nil)

	_, err := service.CancelBooking(context.Background(), 42, 77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_GetBooking_Forbidden(t *testing.T) {
	store := new(MockBookingStore)
	store.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42,
	}, nil)

	service := NewService(store, new(MockCatalog), nil)

	_, err := service.GetBooking(context.Background(), 7, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ListBookings_PassesFilter(t *testing.T) {
	store := new(MockBookingStore)
	hotelType := domain.ProductHotel
	store.On("ListByUser", mock.Anything, int64(42), &hotelType).Return([]domain.Booking{
		{ID: 2}, {ID: 1},
	}, nil)

	service := NewService(store, new(MockCatalog), nil)

	bs, err := service.ListBookings(context.Background(), 42, &hotelType)
	require.NoError(t, err)
	assert.Len(t, bs, 2)
	store.AssertExpectations(t)
}

// fakeStore backs the concurrency test with a real guarded counter, the way
// the SQL store guards available_rooms with a conditional update.
type fakeStore struct {
	mu      sync.Mutex
	rooms   int
	nextID  int64
	created []domain.Booking
}

func (f *fakeStore) Create(ctx context.Context, b *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b.Product.Type == domain.ProductHotel {
		if f.rooms < b.Guests {
			return domain.ErrInsufficientCapacity
		}
		f.rooms -= b.Guests
	}

	f.nextID++
	b.ID = f.nextID
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeStore) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStore) ListByUser(ctx context.Context, userID int64, productType *domain.ProductType) ([]domain.Booking, error) {
	return nil, nil
}

type fakeCatalog struct {
	hotel domain.Hotel
}

func (f *fakeCatalog) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h := f.hotel
	return &h, nil
}

func (f *fakeCatalog) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error) {
	return nil, domain.ErrNotFound
}

func TestService_CreateBooking_ConcurrentLastRoom(t *testing.T) {
	store := &fakeStore{rooms: 1}
	cat := &fakeCatalog{hotel: domain.Hotel{
		ID:             7,
		PricePerNight:  decimal.RequireFromString("100"),
		AvailableRooms: 1,
	}}

	service := NewService(store, cat, nil)

	req := CreateBookingRequest{
		HotelID:  ptrI64(7),
		CheckIn:  ptrStr("2024-06-01"),
		CheckOut: ptrStr("2024-06-02"),
		Guests:   ptrInt(1),
	}

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateBooking(context.Background(), int64(i+1), req)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
			conflicts++
		}
	}

	assert.Equal(t, 1, wins, "exactly one reservation may claim the last room")
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 0, store.rooms, "no double decrement, no lost update")
	assert.Len(t, store.created, 1)
}
