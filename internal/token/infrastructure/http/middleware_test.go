package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtmocks "github.com/Lexv0lk/token-store/gen/mocks/jwt"
	"github.com/Lexv0lk/token-store/internal/pkg/jwt"
	"github.com/Lexv0lk/token-store/internal/pkg/ratelimit"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewAuthMiddleware(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		header string

		prepareFn func(t *testing.T, parser *jwtmocks.MockTokenParser)

		expectingError bool
		errorStatus    int

		expectedToken  string
		expectedCaller domain.Address
	}

	testCases := []testCase{
		{
			name:   "success",
			header: "Bearer valid_token",
			prepareFn: func(t *testing.T, parser *jwtmocks.MockTokenParser) {
				parser.EXPECT().ParseToken([]byte("secret"), "valid_token").
					Return(&jwt.Claims{UserID: 1, Account: "alice"}, nil)
			},

			expectingError: false,
			expectedToken:  "valid_token",
			expectedCaller: "alice",
		},
		{
			name:   "missing authorization header",
			header: "",
			prepareFn: func(t *testing.T, parser *jwtmocks.MockTokenParser) {
			},

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "invalid auth header format",
			header: "InvalidHeaderFormat",
			prepareFn: func(t *testing.T, parser *jwtmocks.MockTokenParser) {
			},

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "invalid auth header prefix",
			header: "Token invalid_token",
			prepareFn: func(t *testing.T, parser *jwtmocks.MockTokenParser) {
			},

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "token rejected by parser",
			header: "Bearer expired_token",
			prepareFn: func(t *testing.T, parser *jwtmocks.MockTokenParser) {
				parser.EXPECT().ParseToken([]byte("secret"), "expired_token").
					Return(nil, assert.AnError)
			},

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			parser := jwtmocks.NewMockTokenParser(ctrl)
			tt.prepareFn(t, parser)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set(authHeaderName, tt.header)

			middleware := NewAuthMiddleware(parser, "secret")
			middleware(c)

			if tt.expectingError {
				assert.Equal(t, tt.errorStatus, writer.Code)
				assert.True(t, c.IsAborted())
				_, ok := callerFrom(c)
				assert.False(t, ok)
			} else {
				token, exists := c.Get(jwt.TokenContextKey)
				assert.Equal(t, true, exists)
				assert.Equal(t, tt.expectedToken, token)

				caller, ok := callerFrom(c)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCaller, caller)
			}
		})
	}
}

func TestNewRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRateLimitMiddleware(ratelimit.NewKeyLimiter(0.001, 2, 0)))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		writer := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(writer, request)
		codes = append(codes, writer.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	writer := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(writer, request)
	assert.Equal(t, http.StatusOK, writer.Code)
}

func TestNewRateLimitMiddleware_Disabled(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRateLimitMiddleware(nil))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 10 {
		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, writer.Code)
	}
}
