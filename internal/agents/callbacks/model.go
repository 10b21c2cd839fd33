package callbacks

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"agentlab/internal/ai"
	"agentlab/pkg/logger"
)

const tempCacheKeyState = "temp:llm_cache_key"

// CachingBeforeModelCallback checks Redis for a previously cached response
// to an identical request. On a hit the model call is skipped entirely.
func CachingBeforeModelCallback(redisClient *redis.Client) llmagent.BeforeModelCallback {
	return func(ctx agent.CallbackContext, req *model.LLMRequest) (*model.LLMResponse, error) {
		if redisClient == nil {
			return nil, nil
		}

		log := logger.Get().With("component", "model_cache")

		cacheKey, err := CacheKey(req)
		if err != nil {
			log.Warnf("Failed to generate cache key: %v", err)
			return nil, nil
		}

		// Remember the key so the after callback can store the response.
		if err := ctx.State().Set(tempCacheKeyState, cacheKey); err != nil {
			log.Warnf("Failed to stash cache key: %v", err)
		}

		cached, err := redisClient.Get(ctx, cacheKey).Result()
		if err == redis.Nil {
			log.Debug("Cache miss for model request")
			return nil, nil
		}
		if err != nil {
			log.Warnf("Redis get error: %v", err)
			return nil, nil
		}

		var cachedResp model.LLMResponse
		if err := json.Unmarshal([]byte(cached), &cachedResp); err != nil {
			log.Warnf("Failed to unmarshal cached response: %v", err)
			return nil, nil
		}

		log.Info("Cache hit, returning cached model response")
		return &cachedResp, nil
	}
}

// SaveToCacheAfterModelCallback stores successful responses under the key
// stashed by CachingBeforeModelCallback.
func SaveToCacheAfterModelCallback(redisClient *redis.Client, ttl time.Duration) llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, respErr error) (*model.LLMResponse, error) {
		if redisClient == nil || resp == nil || respErr != nil {
			return resp, respErr
		}

		log := logger.Get().With("component", "model_cache")

		keyVal, err := ctx.ReadonlyState().Get(tempCacheKeyState)
		if err != nil {
			return resp, nil
		}
		cacheKey, ok := keyVal.(string)
		if !ok || cacheKey == "" {
			return resp, nil
		}

		data, err := json.Marshal(resp)
		if err != nil {
			log.Warnf("Failed to marshal response for cache: %v", err)
			return resp, nil
		}

		if err := redisClient.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
			log.Warnf("Redis set error: %v", err)
		}

		return resp, nil
	}
}

// RateLimitBeforeModelCallback blocks until the limiter grants a slot.
// It keeps bursts of agent turns under the provider's request budget.
func RateLimitBeforeModelCallback(limiter *ai.RateLimiter) llmagent.BeforeModelCallback {
	return func(ctx agent.CallbackContext, req *model.LLMRequest) (*model.LLMResponse, error) {
		if limiter == nil {
			return nil, nil
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// UsageLoggingAfterModelCallback logs token usage per model call.
func UsageLoggingAfterModelCallback() llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, respErr error) (*model.LLMResponse, error) {
		if respErr != nil || resp == nil || resp.UsageMetadata == nil {
			return resp, respErr
		}

		logger.Get().With("component", "token_usage", "agent", ctx.AgentName()).
			Debugf("Tokens used: prompt=%d completion=%d total=%d",
				resp.UsageMetadata.PromptTokenCount,
				resp.UsageMetadata.CandidatesTokenCount,
				resp.UsageMetadata.TotalTokenCount,
			)

		return resp, nil
	}
}

// CacheKey builds a deterministic key from the request's message texts
// and tool declarations.
func CacheKey(req *model.LLMRequest) (string, error) {
	cacheData := struct {
		Contents []string
		Tools    map[string]interface{}
	}{
		Contents: make([]string, 0, len(req.Contents)),
		Tools:    req.Tools,
	}

	for _, content := range req.Contents {
		if content == nil {
			continue
		}
		for _, part := range content.Parts {
			if part.Text != "" {
				cacheData.Contents = append(cacheData.Contents, content.Role+":"+part.Text)
			}
		}
	}

	dataBytes, err := json.Marshal(cacheData)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(dataBytes)
	return "llm_cache:" + hex.EncodeToString(hash[:]), nil
}
