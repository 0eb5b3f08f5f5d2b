package hotelcore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/session"
	"github.com/m04kA/HMS-PlanningService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSession() *session.Session {
	return &session.Session{Token: "test-token", RequestID: "req-123"}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetAvailableRooms(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/available", r.URL.Path)
		assert.Equal(t, "2024-06-12", r.URL.Query().Get("check_in_date"))
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("check_out_date"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))

		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": [
				{"id": 5, "room_number": "105", "room_type_id": 3, "room_type_name": "Deluxe", "status": 1, "floor": 1},
				{"id": 6, "room_number": "106", "room_type_id": 3, "room_type_name": "Deluxe", "status": 1, "floor": 1}
			]
		}`))
	})

	rooms, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))
	require.NoError(t, err)

	require.Len(t, rooms, 2)
	assert.Equal(t, int64(5), rooms[0].ID)
	assert.Equal(t, "105", rooms[0].RoomNumber)
	assert.Equal(t, "Deluxe", rooms[0].RoomTypeName)
}

// Бэкенд отдает "нет данных" как неуспех с "data not found":
// для клиента это успешный пустой результат, не ошибка
func TestGetAvailableRooms_DataNotFoundIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "Data not found", "data": null}`))
	})

	rooms, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))

	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestGetAvailableRooms_SessionExpired(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestGetAvailableRooms_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetAvailableRooms_BackendRejects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "internal failure", "data": null}`))
	})

	_, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetAvailableRooms_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // соединение будет отклонено

	client := NewClient(srv.URL, time.Second, nil, nopLogger{})

	_, err := client.GetAvailableRooms(context.Background(), testSession(),
		date(2024, 6, 12), date(2024, 6, 15))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestListRoomsWithRoomType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/with-room-type", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {"rooms": [{"id": 5, "room_number": "105", "room_type_id": 3, "room_type_name": "Deluxe", "status": 1, "floor": 2}]}
		}`))
	})

	rooms, err := client.ListRoomsWithRoomType(context.Background(), testSession(), 0, 100)
	require.NoError(t, err)

	require.Len(t, rooms, 1)
	assert.Equal(t, 2, rooms[0].Floor)
}

func TestListBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/booking/", r.URL.Path)
		assert.Equal(t, "2024-06-08", r.URL.Query().Get("check_in_date"))
		assert.Equal(t, "2024-06-20", r.URL.Query().Get("check_out_date"))

		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {"booking_customer_payments": [
				{
					"booking_id": 42,
					"booking_status": 2,
					"booking_price": 3600.00,
					"check_in_date": "2024-06-10",
					"check_out_date": "2024-06-13T00:00:00Z",
					"room_id": 5,
					"room_number": "105",
					"customer_firstname": "Anna",
					"customer_surname": "Smith",
					"payment_status": 2
				}
			]}
		}`))
	})

	bookings, err := client.ListBookings(context.Background(), testSession(), domain.BookingsFilter{
		CheckInDate:  ptr.Ptr(date(2024, 6, 8)),
		CheckOutDate: ptr.Ptr(date(2024, 6, 20)),
		Limit:        100,
	})
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, "Anna", b.GuestFirstName)
	assert.InDelta(t, 3600.00, b.TotalAmount, 0.001)

	// Обе формы дат бэкенда разбираются в один день
	assert.Equal(t, 10, b.CheckInDate.Day())
	assert.Equal(t, 13, b.CheckOutDate.Day())

	require.NotNil(t, b.PaymentStatus)
	assert.Equal(t, domain.PaymentCompleted, *b.PaymentStatus)
}

func TestListBookings_BadDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {"booking_customer_payments": [
				{"booking_id": 1, "check_in_date": "not-a-date", "check_out_date": "2024-06-13"}
			]}
		}`))
	})

	_, err := client.ListBookings(context.Background(), testSession(), domain.BookingsFilter{Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetRatePricesByRoomType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rate_prices/by-room-type/3", r.URL.Path)

		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {"ratePrices": [
				{"id": 1, "name": "Standard", "price_per_night": 1200.00, "room_type_id": 3}
			]}
		}`))
	})

	rates, err := client.GetRatePricesByRoomType(context.Background(), testSession(), 3)
	require.NoError(t, err)

	require.Len(t, rates, 1)
	assert.Equal(t, "Standard", rates[0].Name)
	assert.InDelta(t, 1200.00, rates[0].PricePerNight, 0.001)
}

// Бэкенд отдает "данных нет" со статусом 404 и тем же конвертом:
// для клиента это успешный пустой результат, а не ошибка транспорта
func TestGetRatePricesByRoomType_NotFoundStatusIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "message": "data not found"}`))
	})

	rates, err := client.GetRatePricesByRoomType(context.Background(), testSession(), 3)

	require.NoError(t, err)
	assert.Empty(t, rates)
}

// Форма ошибки с messages (массив строк) разбирается наравне с message
func TestListBookings_NotFoundMessagesArrayIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "messages": ["Data not found error"]}`))
	})

	bookings, err := client.ListBookings(context.Background(), testSession(), domain.BookingsFilter{Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

// 404 с настоящей ошибкой (не "данных нет") остается ошибкой
func TestGetRatePricesByRoomType_NotFoundWithOtherError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "messages": ["room type does not exist"]}`))
	})

	_, err := client.GetRatePricesByRoomType(context.Background(), testSession(), 99)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetRatePricesByRoomType_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "data not found", "data": null}`))
	})

	rates, err := client.GetRatePricesByRoomType(context.Background(), testSession(), 3)

	require.NoError(t, err)
	assert.Empty(t, rates)
}
