package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresDB создает пул соединений PostgreSQL и проверяет его ping.
// maxConns = 0 оставляет лимит из URL или значение pgxpool по умолчанию
func NewPostgresDB(ctx context.Context, databaseURL string, maxConns int32) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(databaseURL, maxConns)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

func poolConfig(databaseURL string, maxConns int32) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if maxConns > 0 {
		cfgPool.MaxConns = maxConns
	}
	return cfgPool, nil
}
