package career

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	redisclient "github.com/oldworld/wjdr-api/internal/redis"
)

const (
	careerKeyPrefix = "career:"
	careerIndexKey  = "career:all"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis career catalog.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed career catalog.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	career, err := wjdr.NewCareer(input.Career)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(career)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal career")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, careerKeyPrefix+career.Name, data, 0)
	pipe.SAdd(ctx, careerIndexKey, career.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save career")
	}

	return &SaveOutput{Career: career}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("career name is required")
	}

	result, err := r.client.Get(ctx, careerKeyPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("career %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get career")
	}

	var career wjdr.Career
	if err := json.Unmarshal([]byte(result), &career); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal career")
	}

	return &GetOutput{Career: &career}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, careerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get career index")
	}

	careers := make([]*wjdr.Career, 0, len(names))
	for _, name := range names {
		output, err := r.Get(ctx, GetInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, careerIndexKey, name)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get career %s", name)
		}
		if input.BasicOnly && !output.Career.Basic {
			continue
		}
		careers = append(careers, output.Career)
	}

	return &ListOutput{Careers: careers}, nil
}
