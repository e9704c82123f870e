package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
)

func (s *ProcessedSet) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	delete(s.index, elem.Value.(*entry).key)
	s.ll.Remove(elem)
	metrics.ProcessedSetSize.Set(float64(s.ll.Len()))
}

// ttl <= 0 — ключи живут до вытеснения по ёмкости.
func (s *ProcessedSet) isExpired(ent *entry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (s *ProcessedSet) expiryFrom(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// pruneExpiredFromBack — снимает истёкшие ключи с хвоста до первого живого.
func (s *ProcessedSet) pruneExpiredFromBack(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for back := s.ll.Back(); back != nil; back = s.ll.Back() {
		if !now.After(back.Value.(*entry).expiresAt) {
			return
		}
		s.removeElement(back)
		metrics.ProcessedSetOps.WithLabelValues("expired").Inc()
	}
}
