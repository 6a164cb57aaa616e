package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lelo88/items-web-golang/internal/faults"
)

const (
	// maxConns limita las conexiones vivas del pool. El pool es único
	// para todo el proceso; no se crean pools por request.
	maxConns = 5

	connectTimeout = 5 * time.Second
)

type poolPinger interface {
	Ping(ctx context.Context) error
	Close()
}

var (
	newPool  = pgxpool.NewWithConfig
	pingPool = func(ctx context.Context, pool poolPinger) error {
		return pool.Ping(ctx)
	}
	closePool = func(pool poolPinger) {
		pool.Close()
	}
)

// NewPool crea el pool de conexiones a PostgreSQL a partir de la URL.
// URL malformada => ConfigError; store inalcanzable => StoreError.
// No hay reintentos: si falla, el arranque del proceso debe abortar.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, faults.Config(err)
	}
	poolConfig.MaxConns = maxConns

	// Timeout corto para evitar que el arranque quede colgado si la DB no responde.
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := newPool(ctx, poolConfig)
	if err != nil {
		return nil, faults.Store(err)
	}

	// Validación temprana: asegura que la app no arranca "a medias".
	if err := pingPool(ctx, pool); err != nil {
		closePool(pool)
		return nil, faults.Store(err)
	}

	return pool, nil
}
