package clientmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Collector принимает наблюдения по исходящим запросам
type Collector interface {
	ObserveBackendRequest(method, path, status string, seconds float64)
	BackendInFlightInc()
	BackendInFlightDec()
}

// Transport http.RoundTripper, собирающий метрики по каждому исходящему
// запросу к бэкенду. Оборачивает базовый транспорт клиента.
type Transport struct {
	base      http.RoundTripper
	collector Collector
}

// Wrap оборачивает базовый транспорт сборщиком метрик.
// При base == nil используется http.DefaultTransport.
func Wrap(base http.RoundTripper, collector Collector) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:      base,
		collector: collector,
	}
}

// RoundTrip выполняет запрос и фиксирует длительность и статус ответа.
// Транспортная ошибка учитывается со статусом "error".
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.collector.BackendInFlightInc()
	defer t.collector.BackendInFlightDec()

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	t.collector.ObserveBackendRequest(req.Method, req.URL.Path, status, elapsed)

	return resp, err
}
