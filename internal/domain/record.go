package domain

import (
	"fmt"
	"strings"
	"time"
)

// Record holds the store-assigned identity and ordering columns shared by
// every managed entity.
type Record struct {
	ID         int64     `json:"id" yaml:"-"`
	OrderIndex int       `json:"order_index" yaml:"-"`
	Version    int       `json:"version" yaml:"-"`
	CreatedAt  time.Time `json:"created_at" yaml:"-"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"-"`
}

// Meta returns the record columns.
func (r Record) Meta() Record { return r }

// SetOrderIndex overwrites the display position.
func (r *Record) SetOrderIndex(i int) { r.OrderIndex = i }

// SetMeta replaces identity, ordering and timestamps wholesale.
func (r *Record) SetMeta(m Record) { *r = m }

// Collection names one of the ordered content tables.
type Collection string

const (
	CollectionProjects    Collection = "projects"
	CollectionHackathons  Collection = "hackathons"
	CollectionExperiences Collection = "experiences"
	CollectionLinks       Collection = "links"
)

// Collections lists every managed collection in dashboard order.
func Collections() []Collection {
	return []Collection{CollectionProjects, CollectionHackathons, CollectionExperiences, CollectionLinks}
}

// ParseCollection validates a collection name taken from a URL or CLI flag.
func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Collections() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown collection %q", ErrInvalidInput, s)
}

// Table returns the SQL table backing the collection.
func (c Collection) Table() string {
	return string(c)
}
