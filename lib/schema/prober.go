package schema

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Provider tells whether a logical table is provisioned in the backing store.
type Provider interface {
	TableExists(name string) bool
}

var Instance Provider

func NewHandler(db *gorm.DB, probeOnce bool, tables ...string) {
	prober := NewProber(db)
	if probeOnce {
		Instance = NewSnapshot(prober, tables...)
		return
	}
	Instance = prober
}

func NewProber(db *gorm.DB) Provider {
	return &prober{db: db}
}

type prober struct {
	db *gorm.DB
}

// TableExists reads at most one row. Only a "relation does not exist" answer
// means false; any other failure is reported as existing.
func (p prober) TableExists(name string) bool {
	rows := []map[string]interface{}{}
	err := p.db.
		Table(name).
		Limit(1).
		Find(&rows).
		Error
	if err == nil {
		return true
	}
	if IsRelationNotFound(err) {
		log.WithField("table", name).Debug("table is not provisioned")
		return false
	}
	log.
		WithError(err).
		WithField("table", name).
		Warn("table probe failed, assuming table exists")
	return true
}

// IsRelationNotFound recognises missing table errors of Postgres (42P01) and SQLite.
func IsRelationNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.Contains(msg, "(SQLSTATE 42P01)") {
		return true
	}
	if strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist") {
		return true
	}
	return strings.Contains(msg, "no such table")
}

// NewSnapshot probes tables once and answers from the cached flags afterwards.
// Tables not in the initial list are probed on first use and cached.
func NewSnapshot(source Provider, tables ...string) Provider {
	s := &snapshot{
		source: source,
		flags:  make(map[string]bool, len(tables)),
	}
	for _, table := range tables {
		s.flags[table] = source.TableExists(table)
	}
	log.WithField("tables", s.flags).Info("schema capabilities loaded")
	return s
}

type snapshot struct {
	source Provider
	mu     sync.RWMutex
	flags  map[string]bool
}

func (s *snapshot) TableExists(name string) bool {
	s.mu.RLock()
	exists, ok := s.flags[name]
	s.mu.RUnlock()
	if ok {
		return exists
	}
	exists = s.source.TableExists(name)
	s.mu.Lock()
	s.flags[name] = exists
	s.mu.Unlock()
	return exists
}

// Refresh probes every cached table again.
func (s *snapshot) Refresh() {
	s.mu.RLock()
	tables := make([]string, 0, len(s.flags))
	for table := range s.flags {
		tables = append(tables, table)
	}
	s.mu.RUnlock()
	flags := make(map[string]bool, len(tables))
	for _, table := range tables {
		flags[table] = s.source.TableExists(table)
	}
	s.mu.Lock()
	for table, exists := range flags {
		s.flags[table] = exists
	}
	s.mu.Unlock()
}

// Refresher is implemented by providers that cache probe results.
type Refresher interface {
	Refresh()
}

// Capabilities returns a copy of the known flags, for health reporting.
func Capabilities(p Provider, tables ...string) map[string]bool {
	result := make(map[string]bool, len(tables))
	for _, table := range tables {
		result[table] = p.TableExists(table)
	}
	return result
}
