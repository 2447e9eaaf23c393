package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering/cmd"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "ordering",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=ordering sslmode=disable", cfg.DSN())
}

func TestCompositionRoot_ServesHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	for name, rc := range map[string]*redis.Client{"without cache": nil, "with cache": client} {
		t.Run(name, func(t *testing.T) {
			app := cmd.NewCompositionRoot(cmd.Config{}, nil, rc, logger)
			e := echo.New()
			server := app.CreateServer()
			require.NotNil(t, server)
			server.Register(e)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
