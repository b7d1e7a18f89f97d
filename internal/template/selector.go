package template

import (
	"strings"

	"github.com/nlebedev/corner/internal/domain"
)

// Select shapes a catalog to exactly count sessions. A short request takes
// a deterministic prefix of the catalog; a long request repeats entry 0
// until the week is full. Repetition is intentional, not an error: a
// request for more sessions than templates exist yields exact duplicates
// beyond the original set. The result is sorted by canonical day order.
func Select(catalog []domain.Session, count int) []domain.Session {
	var sessions []domain.Session
	if count <= len(catalog) {
		sessions = domain.CloneSessions(catalog[:count])
	} else {
		sessions = domain.CloneSessions(catalog)
		for len(sessions) < count {
			sessions = append(sessions, catalog[0])
		}
	}

	domain.SortByDay(sessions)
	return sessions
}

// ForWeek picks the catalog source for a sport and returns a finished
// template week. Only boxing has a hand-authored catalog; every other sport
// gets the generic conditioning generator.
func ForWeek(sport string, level domain.Level, count int, contraindications string) []domain.Session {
	if strings.EqualFold(strings.TrimSpace(sport), "boxing") {
		return Select(BoxingCatalog(level, contraindications), count)
	}
	return Select(GenericCatalog(sport, count, contraindications), count)
}
