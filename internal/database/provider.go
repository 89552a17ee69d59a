package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

// ErrConnectionFailed is returned when no session could be opened against the
// database (bad credentials, unreachable host, closed pool).
var ErrConnectionFailed = errors.New("database connection failed")

// Provider hands out one dedicated database session per request.
type Provider struct {
	db       *gorm.DB
	acquired atomic.Int64
	released atomic.Int64
}

// Stats counts sessions handed out and given back. Outside of in-flight
// requests Acquired == Released.
type Stats struct {
	Acquired int64 `json:"acquired"`
	Released int64 `json:"released"`
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

// Conn is a single acquired session. DB is bound to it: every query issued
// through DB runs on this connection and nowhere else.
type Conn struct {
	DB *gorm.DB

	raw      *sql.Conn
	provider *Provider
	once     sync.Once
}

// Close releases the session. Safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		err = c.raw.Close()
		c.provider.released.Add(1)
	})
	return err
}

// Acquire opens a session and verifies it with a ping. The caller owns the
// returned Conn and must Close it.
func (p *Provider) Acquire(ctx context.Context) (*Conn, error) {
	sqlDB, err := p.db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	raw, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	p.acquired.Add(1)

	tx := p.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = raw

	return &Conn{DB: tx, raw: raw, provider: p}, nil
}

// WithConnection runs fn on a freshly acquired session and releases it on
// every exit path, panics included.
func (p *Provider) WithConnection(ctx context.Context, fn func(tx *gorm.DB) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn.DB)
}

func (p *Provider) Stats() Stats {
	return Stats{
		Acquired: p.acquired.Load(),
		Released: p.released.Load(),
	}
}
