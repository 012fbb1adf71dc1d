// Package fetch: результат чтения, которое не имеет права ронять страницу.
package fetch

// Result: либо данные, либо причина отказа. При отказе Data содержит безопасное
// пустое значение, и вызывающий может им пользоваться без проверок.
type Result[T any] struct {
	Data T
	Err  error
	// Stale: данные отданы из кеша после истечения окна свежести.
	Stale bool
}

func OK[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Fail: отказ с подстановкой пустого значения.
func Fail[T any](err error, empty T) Result[T] {
	return Result[T]{Data: empty, Err: err}
}

func (r Result[T]) Failed() bool { return r.Err != nil }

// Degraded сообщает, что данные неполные: ошибка чтения или устаревший кеш.
func (r Result[T]) Degraded() bool { return r.Err != nil || r.Stale }
