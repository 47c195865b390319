package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testAdmin domain.Address = "admin"
	testUser  domain.Address = "alice"
)

func newTestContext(t *testing.T, method string, body any, caller domain.Address, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(bodyBytes)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, "/", reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	if caller != "" {
		c.Set(CallerContextKey, caller)
	}

	return c, writer
}
