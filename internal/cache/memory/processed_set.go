package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
)

type entry struct {
	key       string
	expiresAt time.Time
}

// ProcessedSet — LRU-множество ключей обработанных сообщений с TTL.
// Consumer отмечает в нём успешно оплаченные заявки, чтобы повторная доставка
// того же сообщения (коммит оффсета не прошёл) не приводила ко второму списанию.
type ProcessedSet struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewProcessedSet(capacity int, ttl time.Duration) *ProcessedSet {
	if capacity <= 0 {
		capacity = 1
	}
	return &ProcessedSet{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Seen — ключ уже отмечен и не истёк.
func (s *ProcessedSet) Seen(key string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		metrics.ProcessedSetOps.WithLabelValues("miss").Inc()
		return false
	}
	if s.isExpired(elem.Value.(*entry), now) {
		metrics.ProcessedSetOps.WithLabelValues("expired").Inc()
		s.removeElement(elem)
		return false
	}
	s.ll.MoveToFront(elem)
	metrics.ProcessedSetOps.WithLabelValues("hit").Inc()
	return true
}

// Remember — отмечает ключ; при переполнении вытесняет самый старый.
func (s *ProcessedSet) Remember(key string) {
	if key == "" {
		return
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[key]; ok {
		elem.Value.(*entry).expiresAt = s.expiryFrom(now)
		s.ll.MoveToFront(elem)
		return
	}

	s.pruneExpiredFromBack(now)

	s.index[key] = s.ll.PushFront(&entry{key: key, expiresAt: s.expiryFrom(now)})
	if s.ll.Len() > s.capacity {
		s.removeElement(s.ll.Back())
		metrics.ProcessedSetOps.WithLabelValues("evicted").Inc()
	}
	metrics.ProcessedSetSize.Set(float64(s.ll.Len()))
}

// Len — текущее число ключей (с учётом ещё не вычищенных истёкших).
func (s *ProcessedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}
