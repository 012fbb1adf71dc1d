// internal/reqctx/reqctx.go
package reqctx

import (
	"context"

	"portfolio/internal/settings"
)

type key int

const (
	keyRequestID key = iota
	keyUserID
	keyRole
	keySettings
)

const RoleAdmin = "admin"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

func GetUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUserID).(string)
	return v, ok
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, keyRole, role)
}

func GetRole(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRole).(string)
	return v, ok
}

// IsAdmin: true только для аутентифицированного пользователя с ролью admin.
func IsAdmin(ctx context.Context) bool {
	role, ok := GetRole(ctx)
	return ok && role == RoleAdmin
}

// WithSettings кладёт снимок настроек, собранный один раз на запрос.
func WithSettings(ctx context.Context, s settings.Settings) context.Context {
	return context.WithValue(ctx, keySettings, s)
}

// Settings возвращает снимок настроек запроса. Без снимка: пустые настройки,
// у которых любой Get отдаёт дефолт.
func Settings(ctx context.Context) settings.Settings {
	s, _ := ctx.Value(keySettings).(settings.Settings)
	return s
}
