package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// PasswordResetRepositoryImpl implements domain.PasswordResetRepository using
// Redis. Two keys exist per outstanding request: the token key holding the
// request itself, and an email index key used to enforce the at-most-one
// request per email invariant. Neither key carries a TTL; a token stays
// valid until it is consumed or superseded.
type PasswordResetRepositoryImpl struct {
	client      *redis.Client
	tokenPrefix string
	emailPrefix string
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(client *redis.Client) domain.PasswordResetRepository {
	return &PasswordResetRepositoryImpl{
		client:      client,
		tokenPrefix: "pwreset:token:",
		emailPrefix: "pwreset:email:",
	}
}

// Create implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) Create(ctx context.Context, reset *domain.PasswordReset) error {
	data, err := json.Marshal(reset)
	if err != nil {
		return fmt.Errorf("failed to marshal password reset: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenPrefix+reset.Token, data, 0)
	pipe.Set(ctx, r.emailPrefix+reset.Email, reset.Token, 0)
	_, err = pipe.Exec(ctx)
	return err
}

// FindByToken implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	data, err := r.client.Get(ctx, r.tokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}

	var reset domain.PasswordReset
	if err := json.Unmarshal([]byte(data), &reset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal password reset: %w", err)
	}
	return &reset, nil
}

// DeleteByEmail implements domain.PasswordResetRepository. Removing a request
// that does not exist is not an error.
func (r *PasswordResetRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	token, err := r.client.Get(ctx, r.emailPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.tokenPrefix+token)
	pipe.Del(ctx, r.emailPrefix+email)
	_, err = pipe.Exec(ctx)
	return err
}

// Delete implements domain.PasswordResetRepository. Consuming a token removes
// both the token key and its email index so it can never be used again.
func (r *PasswordResetRepositoryImpl) Delete(ctx context.Context, token string) error {
	data, err := r.client.Get(ctx, r.tokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	var reset domain.PasswordReset
	if err := json.Unmarshal([]byte(data), &reset); err != nil {
		return fmt.Errorf("failed to unmarshal password reset: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.tokenPrefix+token)
	pipe.Del(ctx, r.emailPrefix+reset.Email)
	_, err = pipe.Exec(ctx)
	return err
}
