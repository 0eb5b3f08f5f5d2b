package hotelcore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/session"
)

// Client клиент REST API бэкенда отельной системы (бронирования, комнаты,
// тарифы). Токен сессии не читается из глобального состояния: он приходит
// явно в session.Session и подставляется в каждый запрос.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда.
// transport может быть обернут сборщиком метрик (pkg/clientmetrics); nil
// означает транспорт по умолчанию.
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// GetAvailableRooms возвращает список свободных комнат на полуинтервал
// [checkIn, checkOut). Пустой список - успешный результат, не ошибка.
func (c *Client) GetAvailableRooms(ctx context.Context, sess *session.Session, checkIn, checkOut time.Time) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("check_in_date", checkIn.Format(domain.DateFormat))
	query.Set("check_out_date", checkOut.Format(domain.DateFormat))

	env, err := c.doGet(ctx, sess, "/rooms/available", query)
	if err != nil {
		return nil, err
	}

	if isDataNotFound(env) {
		return []domain.Room{}, nil
	}

	var payload []roomPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode available rooms: %v", ErrInvalidResponse, err)
	}

	rooms := make([]domain.Room, len(payload))
	for i := range payload {
		rooms[i] = payload[i].toDomain()
	}

	return rooms, nil
}

// ListRoomsWithRoomType возвращает все комнаты с названиями их типов
// для строк сетки занятости
func (c *Client) ListRoomsWithRoomType(ctx context.Context, sess *session.Session, skip, limit uint64) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("skip", strconv.FormatUint(skip, 10))
	query.Set("limit", strconv.FormatUint(limit, 10))

	env, err := c.doGet(ctx, sess, "/rooms/with-room-type", query)
	if err != nil {
		return nil, err
	}

	if isDataNotFound(env) {
		return []domain.Room{}, nil
	}

	var data roomsData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rooms: %v", ErrInvalidResponse, err)
	}

	rooms := make([]domain.Room, len(data.Rooms))
	for i := range data.Rooms {
		rooms[i] = data.Rooms[i].toDomain()
	}

	return rooms, nil
}

// ListBookings возвращает денормализованные строки "бронь + гость + платеж"
// по фильтру (окно дат, статус брони, статус оплаты)
func (c *Client) ListBookings(ctx context.Context, sess *session.Session, filter domain.BookingsFilter) ([]domain.Booking, error) {
	query := url.Values{}
	query.Set("skip", strconv.FormatUint(filter.Skip, 10))
	query.Set("limit", strconv.FormatUint(filter.Limit, 10))

	if filter.CheckInDate != nil {
		query.Set("check_in_date", filter.CheckInDate.Format(domain.DateFormat))
	}
	if filter.CheckOutDate != nil {
		query.Set("check_out_date", filter.CheckOutDate.Format(domain.DateFormat))
	}
	if filter.Status != nil {
		query.Set("status", strconv.Itoa(int(*filter.Status)))
	}
	if filter.PaymentStatus != nil {
		query.Set("payment_status", strconv.Itoa(int(*filter.PaymentStatus)))
	}

	env, err := c.doGet(ctx, sess, "/booking/", query)
	if err != nil {
		return nil, err
	}

	if isDataNotFound(env) {
		return []domain.Booking{}, nil
	}

	var data bookingsData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(data.BookingCustomerPayments))
	for i := range data.BookingCustomerPayments {
		booking, err := data.BookingCustomerPayments[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetRatePricesByRoomType возвращает тарифы для типа комнаты.
// Отсутствие тарифов - успешный пустой результат, не ошибка.
func (c *Client) GetRatePricesByRoomType(ctx context.Context, sess *session.Session, roomTypeID int64) ([]domain.RatePrice, error) {
	path := fmt.Sprintf("/rate_prices/by-room-type/%d", roomTypeID)

	env, err := c.doGet(ctx, sess, path, nil)
	if err != nil {
		return nil, err
	}

	if isDataNotFound(env) {
		return []domain.RatePrice{}, nil
	}

	var data ratePricesData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate prices: %v", ErrInvalidResponse, err)
	}

	rates := make([]domain.RatePrice, len(data.RatePrices))
	for i := range data.RatePrices {
		rates[i] = data.RatePrices[i].toDomain()
	}

	return rates, nil
}

// doGet выполняет GET к бэкенду и разбирает конверт ответа
func (c *Client) doGet(ctx context.Context, sess *session.Session, path string, query url.Values) (*envelope, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		if sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
		if sess.RequestID != "" {
			req.Header.Set("X-Request-ID", sess.RequestID)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// 404 несет тот же конверт: бэкенд так отдает "данных нет".
		// Решение "пустой результат или ошибка" принимает разбор конверта ниже.
	case http.StatusUnauthorized:
		c.log.Warn("GET %s - session expired (401)", path)
		return nil, ErrSessionExpired
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success && !isDataNotFound(&env) {
		return nil, fmt.Errorf("%w: backend rejected request: %s", ErrInvalidResponse, envelopeMessage(&env))
	}

	return &env, nil
}

// isDataNotFound распознает ответ "данных нет". Бэкенд отдает его как
// неуспех (обычно со статусом 404) с сообщением "data not found" в message
// или messages, но для вызывающего кода это успешный пустой результат,
// а не ошибка транспорта.
func isDataNotFound(env *envelope) bool {
	if env.Success {
		return false
	}

	if containsDataNotFound(env.Message) {
		return true
	}

	for _, m := range env.Messages {
		if containsDataNotFound(m) {
			return true
		}
	}

	return false
}

func containsDataNotFound(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "data not found")
}

// envelopeMessage собирает текст ошибки из обеих форм конверта
func envelopeMessage(env *envelope) string {
	if env.Message != "" {
		return env.Message
	}
	return strings.Join(env.Messages, "; ")
}
