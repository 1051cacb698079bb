package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	stdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit throttles per client IP using an ulule formatted rate such as
// "30-M". Over-limit requests get 429 with the X-RateLimit headers set.
func RateLimit(rate string) (echo.MiddlewareFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	lim := limiter.New(memory.NewStore(), r)
	mw := stdlib.NewMiddleware(lim,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))
		}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var nextErr error
			mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				c.SetRequest(req)
				nextErr = next(c)
			})).ServeHTTP(c.Response(), c.Request())
			return nextErr
		}
	}, nil
}
