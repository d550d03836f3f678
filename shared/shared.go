package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	"hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ConvertStringToBool parses an optional query flag. Empty or malformed
// input yields nil, meaning "do not filter".
func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring malformed boolean")

		return nil
	}

	return &parsed
}

// CalculateTotalPage never returns less than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields converts the set fields of a patch struct into a column map
// stamped with modified_at and modified_by. Nil pointers and zero values are
// skipped, non-nil pointers are dereferenced.
func TransformFields(patch any, username string) map[string]any {
	value := reflect.ValueOf(patch)
	fields := make(map[string]any, value.NumField()+2)

	for idx := range value.NumField() {
		column := value.Type().Field(idx).Tag.Get("db")
		field := value.Field(idx)

		if column == "" || field.IsZero() {
			continue
		}

		fields[column] = reflect.Indirect(field).Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = username

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return singleFilter(dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq, Table: table})
}

// FilterByIDs matches any of ids; an empty slice matches nothing.
func FilterByIDs(ids []string, fieldID, table string) dto.FilterGroup {
	return singleFilter(dto.Filter{Field: fieldID, Value: ids, Operator: dto.FilterOperatorIn, Table: table})
}

func singleFilter(filter dto.Filter) dto.FilterGroup {
	return dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{filter}}
}

// BuildCacheKey joins a prefix and its parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, strings.Join(parts, ":"))
}

// BuildCacheKeyWithQuery suffixes prefix with a digest of the paging and filter
// arguments, so each distinct listing gets its own entry under prefix.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(struct {
		Params dto.QueryParams
		Where  string
		Args   map[string]any
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache query")

		return BuildCacheKey(prefix, where)
	}

	sum := sha1.Sum(payload) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches drops every entry stored under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// IsPqError reports whether err carries the given Postgres error code.
func IsPqError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}

// Username returns the authenticated caller's name from ctx, or the guest marker.
func Username(ctx context.Context) string {
	if username, ok := ctx.Value(constant.ContextKeyUsername).(string); ok && username != "" {
		return username
	}

	return constant.ContextGuest
}

// DateFromRequest reads the ?date= query parameter as YYYY-MM-DD, defaulting to today.
func DateFromRequest(r *http.Request) (date.Date, error) {
	value := r.URL.Query().Get(constant.RequestParamDate)
	if value == "" {
		return timezone.Today(), nil
	}

	on, err := date.Parse(value)
	if err != nil {
		return date.Date{}, failure.InvalidDateParam
	}

	return on, nil
}
