package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	integrationSecret = "integration-secret"
	integrationAdmin  = "admin"
	integrationUser   = "alice"
)

type ledgerClient struct {
	t       *testing.T
	baseURL string
}

func (lc ledgerClient) do(method, path, token string, body any) (int, []byte) {
	lc.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(lc.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, lc.baseURL+path, reader)
	require.NoError(lc.t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(lc.t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(lc.t, err)

	return resp.StatusCode, respBody
}

func (lc ledgerClient) authenticate(username, password string) string {
	lc.t.Helper()

	status, body := lc.do(http.MethodPost, "/api/auth", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(lc.t, http.StatusOK, status, string(body))

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(lc.t, json.Unmarshal(body, &resp))

	return resp.Token
}

func (lc ledgerClient) balance(token, account string) uint64 {
	lc.t.Helper()

	status, body := lc.do(http.MethodGet, "/api/balance/"+account, token, nil)
	require.Equal(lc.t, http.StatusOK, status, string(body))

	var resp struct {
		Balance uint64 `json:"balance"`
	}
	require.NoError(lc.t, json.Unmarshal(body, &resp))

	return resp.Balance
}

func startLedgerApp(t *testing.T, cfg LedgerConfig) (*LedgerApp, ledgerClient) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := NewLedgerApp(cfg, logging.NopLogger)
	go func() {
		_ = app.Run(t.Context(), lis)
	}()
	t.Cleanup(app.Shutdown)

	client := ledgerClient{t: t, baseURL: "http://" + lis.Addr().String()}

	require.Eventually(t, func() bool {
		resp, err := http.Get(client.baseURL + "/metrics")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	return app, client
}

func TestLedgerAppSurvivesRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a postgres container")
	}
	gin.SetMode(gin.TestMode)

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("token_store_db"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(t.Context()) })

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	cfg := DefaultLedgerConfig()
	cfg.DbSettings = database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       dbHost,
		Port:       dbPort.Port(),
		DBName:     "token_store_db",
		SSlEnabled: false,
	}
	cfg.JwtSecret = integrationSecret
	cfg.Administrator = integrationAdmin
	cfg.AdminPassword = "admin-password"
	cfg.CatalogSeedPath = "../../../configs/catalog.yaml"
	cfg.RateLimitRPS = 0

	app, client := startLedgerApp(t, cfg)

	status, body := client.do(http.MethodPost, "/api/auth", "", map[string]string{
		"username": integrationAdmin,
		"password": "attacker-chosen",
	})
	require.Equal(t, http.StatusUnauthorized, status, string(body))

	adminToken := client.authenticate(integrationAdmin, "admin-password")
	userToken := client.authenticate(integrationUser, "alice-password")

	status, body = client.do(http.MethodPost, "/api/mint", adminToken, map[string]any{"to": integrationUser, "amount": 100})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = client.do(http.MethodPost, "/api/redeem/1", userToken, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = client.do(http.MethodPost, "/api/mint", userToken, map[string]any{"to": integrationUser, "amount": 100})
	assert.Equal(t, http.StatusForbidden, status, string(body))

	assert.Equal(t, uint64(90), client.balance(userToken, integrationUser))

	app.Shutdown()

	_, client = startLedgerApp(t, cfg)

	adminToken = client.authenticate(integrationAdmin, "admin-password")
	assert.Equal(t, uint64(90), client.balance(adminToken, integrationUser))

	status, body = client.do(http.MethodGet, "/api/catalog", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "\n1: Test Item #1 for 10 Tokens")

	status, body = client.do(http.MethodGet, "/api/supply", adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	var supply struct {
		Minted      uint64 `json:"minted"`
		Burned      uint64 `json:"burned"`
		Redeemed    uint64 `json:"redeemed"`
		TotalSupply uint64 `json:"totalSupply"`
	}
	require.NoError(t, json.Unmarshal(body, &supply))
	assert.Equal(t, uint64(100), supply.Minted)
	assert.Equal(t, uint64(90), supply.TotalSupply)

	_, wrongPassword := client.do(http.MethodPost, "/api/auth", "", map[string]string{
		"username": integrationUser,
		"password": "not-alice",
	})
	assert.Contains(t, string(wrongPassword), "errors")
}
