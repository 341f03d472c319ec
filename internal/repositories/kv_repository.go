package repositories

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// KVStoreInterface é o substrato de persistência chave-valor.
// Get devolve found=false quando a chave ainda não existe (primeiro acesso);
// qualquer outro problema é erro de verdade.
type KVStoreInterface interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// RedisKVRepository implementa o substrato sobre Redis.
type RedisKVRepository struct {
	client *redis.Client
}

func NewRedisKVRepository(client *redis.Client) KVStoreInterface {
	return &RedisKVRepository{client: client}
}

func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisKVRepository) Set(ctx context.Context, key string, value string) error {
	// Sem expiração: as coleções são duráveis.
	return r.client.Set(ctx, key, value, 0).Err()
}
