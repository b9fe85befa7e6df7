package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"staybook/shared/cache"
	"staybook/shared/constant"
	"staybook/shared/dto"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToInt parses a non-negative integer query value, falling back to def when absent or malformed.
func ConvertStringToInt(value string, def int) int {
	if value == "" {
		return def
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue < 0 {
		log.Warn().Err(err).Str("value", value).Msg("failed to convert string to int")

		return def
	}

	return intValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts into a colon separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable cache key from pagination and filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encodedArgs, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode cache key arguments")
	}

	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		fmt.Sprintf("%x", where+string(encodedArgs)),
	)
}

// InvalidateCaches removes every key under prefix; failures are logged, not returned.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// DeviceID returns the anonymous device identifier the request middleware stored in ctx.
func DeviceID(ctx context.Context) string {
	deviceID, _ := ctx.Value(constant.ContextKeyDeviceID).(string)

	return deviceID
}
