package middlewares_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	t.Run("recovers and answers 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		rec := httptest.NewRecorder()
		middlewares.Recover(middlewares.WithRecoverLogger(log))(panicking).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), "panic: boom")
		assert.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("omits stack when disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		rec := httptest.NewRecorder()
		middlewares.Recover(
			middlewares.WithRecoverLogger(log),
			middlewares.WithRecoverDisablePrintStack(),
		)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, buf.String(), `"stack"`)
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		middlewares.Recover()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("re-panics ErrAbortHandler", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string value", "something went wrong", "panic: something went wrong"},
		{"non-string value", 42, "panic: 42"},
		{"nil value", nil, "panic: <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, (&middlewares.PanicError{Value: tt.value}).Error())
		})
	}

	t.Run("AsPanicError unwraps", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handler: %w", &middlewares.PanicError{Value: "x"})
		pe, ok := middlewares.AsPanicError(wrapped)
		require.True(t, ok)
		assert.Equal(t, "x", pe.Value)

		_, ok = middlewares.AsPanicError(errors.New("plain"))
		assert.False(t, ok)
	})
}
