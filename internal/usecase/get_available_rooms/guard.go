package get_available_rooms

import "sync"

// LatestGuard гарантия "последний запрос побеждает". Пока пользователь
// перебирает даты, запросы доступности могут обгонять друг друга; применен
// может быть только результат, соответствующий самому новому диапазону.
// Билеты выдаются монотонно по ключу (сессии), устаревший билет означает,
// что результат нужно отбросить.
type LatestGuard struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewLatestGuard создает новый guard
func NewLatestGuard() *LatestGuard {
	return &LatestGuard{
		latest: make(map[string]uint64),
	}
}

// Begin регистрирует новый запрос для ключа и возвращает его билет.
// Все ранее выданные билеты этого ключа с этого момента устаревают.
func (g *LatestGuard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.latest[key]++
	return g.latest[key]
}

// IsLatest сообщает, остается ли билет самым новым для ключа
func (g *LatestGuard) IsLatest(key string, ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.latest[key] == ticket
}

// Forget удаляет состояние ключа (например, при завершении сессии)
func (g *LatestGuard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.latest, key)
}
