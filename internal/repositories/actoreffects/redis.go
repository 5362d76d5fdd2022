package actoreffects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig configures the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	Now           func() time.Time
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// NewRedis creates a Redis-backed repository with default ID and clock sources
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}

// NewRedisRepository creates a Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		now:           cfg.Now,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.now == nil {
		repo.now = time.Now
	}
	return repo
}

func effectKey(actorID, effectID string) string {
	return fmt.Sprintf("effect:%s:%s", actorID, effectID)
}

func actorIndexKey(actorID string) string {
	return fmt.Sprintf("actor:%s:effects", actorID)
}

func (r *redisRepo) Save(ctx context.Context, actorID string, effect *effects.Effect) error {
	if actorID == "" {
		return bonuserr.InvalidArgument("actor ID is required")
	}
	if effect == nil {
		return bonuserr.InvalidArgument("effect cannot be nil")
	}

	if effect.ID == "" {
		effect.ID = r.uuidGenerator.New()
	}
	if effect.CreatedAt.IsZero() {
		effect.CreatedAt = r.now().UTC()
	}
	if err := effects.Validate(effect); err != nil {
		return err
	}

	jsonData, err := json.Marshal(toData(actorID, effect))
	if err != nil {
		return bonuserr.Wrap(err, "failed to marshal effect data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, effectKey(actorID, effect.ID), string(jsonData), 0)
	pipe.SAdd(ctx, actorIndexKey(actorID), effect.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return bonuserr.WrapWithCode(err, bonuserr.CodeInternal, "failed to save effect in Redis").
			WithMeta(bonuserr.MetaActorID, actorID).
			WithMeta(bonuserr.MetaEffectID, effect.ID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, actorID, effectID string) (*effects.Effect, error) {
	jsonData, err := r.client.Get(ctx, effectKey(actorID, effectID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, bonuserr.NotFoundf("effect %s not found", effectID).
				WithMeta(bonuserr.MetaActorID, actorID).
				WithMeta(bonuserr.MetaEffectID, effectID)
		}
		return nil, bonuserr.WrapWithCode(err, bonuserr.CodeInternal, "failed to get effect from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, bonuserr.Wrapf(err, "failed to unmarshal effect %s", effectID)
	}

	return toEffect(&data), nil
}

func (r *redisRepo) ListByActor(ctx context.Context, actorID string) ([]*effects.Effect, error) {
	effectIDs, err := r.client.SMembers(ctx, actorIndexKey(actorID)).Result()
	if err != nil {
		return nil, bonuserr.WrapWithCode(err, bonuserr.CodeInternal, "failed to get actor effects from Redis").
			WithMeta(bonuserr.MetaActorID, actorID)
	}

	if len(effectIDs) == 0 {
		return []*effects.Effect{}, nil
	}

	keys := make([]string, len(effectIDs))
	for i, id := range effectIDs {
		keys[i] = effectKey(actorID, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, bonuserr.WrapWithCode(err, bonuserr.CodeInternal, "failed to get effects from Redis").
			WithMeta(bonuserr.MetaActorID, actorID)
	}

	result := make([]*effects.Effect, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index points at a deleted blob
			log.Printf("Skipping stale effect index entry %s for actor %s", effectIDs[i], actorID)
			continue
		}

		var data Data
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, bonuserr.Wrapf(err, "failed to unmarshal effect %s", effectIDs[i])
		}
		result = append(result, toEffect(&data))
	}
	return result, nil
}

func (r *redisRepo) Delete(ctx context.Context, actorID, effectID string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, effectKey(actorID, effectID))
	pipe.SRem(ctx, actorIndexKey(actorID), effectID)
	if _, err := pipe.Exec(ctx); err != nil {
		return bonuserr.WrapWithCode(err, bonuserr.CodeInternal, "failed to delete effect from Redis").
			WithMeta(bonuserr.MetaActorID, actorID).
			WithMeta(bonuserr.MetaEffectID, effectID)
	}

	if del.Val() == 0 {
		return bonuserr.NotFoundf("effect %s not found", effectID).
			WithMeta(bonuserr.MetaActorID, actorID).
			WithMeta(bonuserr.MetaEffectID, effectID)
	}
	return nil
}
