package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var _ Store = (*RedisStore)(nil)

// RedisStore sesiones sobre Redis con expiración automática.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore conecta con Redis y verifica la conexión. Acepta una URL
// redis:// o un host:port plano.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Create abre una sesión nueva y devuelve el sid.
func (s *RedisStore) Create(ctx context.Context, user *entity.User) (string, error) {
	sid := uuid.New().String()
	if err := s.set(ctx, sid, user); err != nil {
		return "", err
	}
	return sid, nil
}

// Get recupera el usuario de la sesión.
func (s *RedisStore) Get(ctx context.Context, sid string) (*entity.User, error) {
	data, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("deserializar sesión: %w", err)
	}
	return &user, nil
}

// Refresh reescribe el snapshot bajo el mismo sid, renovando el TTL.
func (s *RedisStore) Refresh(ctx context.Context, sid string, user *entity.User) error {
	return s.set(ctx, sid, user)
}

// Destroy elimina la sesión.
func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("destruir sesión: %w", err)
	}
	return nil
}

func (s *RedisStore) set(ctx context.Context, sid string, user *entity.User) error {
	data, err := json.Marshal(user.Sanitized())
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sid, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}
