package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/cache"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
)

// IdentityCacheTTL 身分快取效期
const IdentityCacheTTL = 5 * time.Minute

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
	getUserByID   = store.GetUserByID
)

// cachedIdentity 快取內容，不含密碼哈希
type cachedIdentity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func identityKey(id uuid.UUID) string {
	return "user:" + id.String()
}

// LoadIdentity 先查 Redis，未命中再查資料庫並回寫快取。
// 快取錯誤只記錄，不影響結果；查無使用者時回傳 store 的 not found 錯誤。
func LoadIdentity(ctx context.Context, db database.DB, cch cache.Cache, id uuid.UUID) (*model.User, error) {
	log := zerolog.Ctx(ctx)
	key := identityKey(id)

	if cch != nil {
		raw, err := cch.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var ci cachedIdentity
			if err := jsonUnmarshal(raw, &ci); err == nil {
				return &model.User{
					ID:        ci.ID,
					Name:      ci.Name,
					Email:     ci.Email,
					Role:      ci.Role,
					CreatedAt: ci.CreatedAt,
					UpdatedAt: ci.UpdatedAt,
				}, nil
			}
			log.Warn().Str("key", key).Msg("discarding malformed identity cache entry")
		case !errors.Is(err, redis.Nil):
			log.Warn().Err(err).Str("key", key).Msg("identity cache get failed")
		}
	}

	user, err := getUserByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if cch != nil {
		payload, err := jsonMarshal(cachedIdentity{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
		if err == nil {
			err = cch.Set(ctx, key, payload, IdentityCacheTTL).Err()
		}
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("identity cache set failed")
		}
	}
	return user, nil
}
