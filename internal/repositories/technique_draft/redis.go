package techniquedraft

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-technique-api/internal/redis"
)

const draftKeyPrefix = "technique_draft:"

// RedisConfig holds the dependencies of the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate checks the config
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis backed draft repository. Each draft is
// a JSON value under technique_draft:<id> whose TTL follows ExpiresAt.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis repository config")
	}

	return &redisRepository{client: cfg.Client, clock: cfg.Clock}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateTechnique(input.Technique); err != nil {
		return nil, err
	}

	data, ttl, err := r.encode(input.Technique)
	if err != nil {
		return nil, err
	}

	key := draftKeyPrefix + input.Technique.ID
	created, err := r.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create draft %s", input.Technique.ID)
	}
	if !created {
		return nil, errors.AlreadyExists("draft " + input.Technique.ID + " already exists")
	}

	slog.DebugContext(ctx, "draft created", "technique_id", input.Technique.ID, "ttl", ttl)

	return &CreateOutput{Technique: input.Technique.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft %s", input.ID)
	}

	var t technique.Technique
	if err := json.Unmarshal([]byte(result), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft %s", input.ID)
	}
	if t.Effects == nil {
		t.Effects = []technique.EffectInstance{}
	}

	return &GetOutput{Technique: &t}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateTechnique(input.Technique); err != nil {
		return nil, err
	}

	data, ttl, err := r.encode(input.Technique)
	if err != nil {
		return nil, err
	}

	key := draftKeyPrefix + input.Technique.ID
	updated, err := r.client.SetXX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft %s", input.Technique.ID)
	}
	if !updated {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Technique.ID)
	}

	return &UpdateOutput{Technique: input.Technique.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft %s", input.ID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// encode marshals the draft and works out its remaining lifetime
func (r *redisRepository) encode(t *technique.Technique) ([]byte, time.Duration, error) {
	ttl := DefaultTTL
	if t.ExpiresAt > 0 {
		ttl = time.Unix(t.ExpiresAt, 0).Sub(r.clock.Now())
		if ttl <= 0 {
			return nil, 0, errors.NotFoundf("draft with ID %s has expired", t.ID)
		}
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to marshal draft %s", t.ID)
	}
	return data, ttl, nil
}

func validateTechnique(t *technique.Technique) error {
	if t == nil {
		return errors.InvalidArgument(errTechniqueNil)
	}
	if t.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	return nil
}
