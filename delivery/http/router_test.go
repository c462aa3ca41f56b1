package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callcenter-service/domain/model"
	"callcenter-service/event"
	"callcenter-service/pkg/database"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/metrics"
	"callcenter-service/repository/postgres"
	"callcenter-service/seed"
	"callcenter-service/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// newTestServer serves the full API over a seeded in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	client, err := database.NewClient(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Migrate(model.All()...))

	db, log := client.GetDB(), logger.NoOpLogger()
	callRepo := postgres.NewCallRepository(db, log)
	ticketRepo := postgres.NewTicketRepository(db, log)
	agentRepo := postgres.NewAgentRepository(db, log, callRepo, ticketRepo)
	customerRepo := postgres.NewCustomerRepository(db, log)
	transactor := postgres.NewTransactor(db, log)
	publisher := event.NewNoopPublisher()
	m := metrics.New("test")

	_, err = seed.Run(context.Background(), seed.Repositories{
		Agents: agentRepo, Customers: customerRepo, Calls: callRepo, Tickets: ticketRepo,
	}, log)
	require.NoError(t, err)

	router := &Router{
		AgentHandler:    NewAgentHandler(usecase.NewAgentUseCase(agentRepo, transactor, publisher, m, log), log),
		CustomerHandler: NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo, publisher, log), log),
		CallHandler:     NewCallHandler(usecase.NewCallUseCase(callRepo, transactor, publisher, log), log),
		TicketHandler:   NewTicketHandler(usecase.NewTicketUseCase(ticketRepo, transactor, publisher, log), log),
		HealthHandler:   NewHealthHandler(client, log),
		Metrics:         m,
		AppLogger:       log,
	}
	srv := httptest.NewServer(router.SetupRoutes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp, nil
	}
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	return resp, envelope
}

func errorCode(envelope map[string]any) string {
	apiErr, _ := envelope["error"].(map[string]any)
	code, _ := apiErr["code"].(string)
	return code
}

func TestAgents_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/agents", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 3)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/agents/2", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Xanlaneron Nerier", body["data"].(map[string]any)["name"])

	resp, body = do(t, srv, http.MethodGet, "/api/v1/agents/99", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/agents/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	newAgent := `{"id":4,"name":"Ana Cruz","email":"acruz@testdomain.com","phone_extension":"1004","status":"Available"}`
	resp, body = do(t, srv, http.MethodPost, "/api/v1/agents", newAgent)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(4), body["data"].(map[string]any)["id"])

	resp, body = do(t, srv, http.MethodPost, "/api/v1/agents", newAgent)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorCode(body))

	resp, body = do(t, srv, http.MethodPost, "/api/v1/agents", `{"id":5,"name":"","email":"x","status":"Sleeping"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/agents", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAgents_Update(t *testing.T) {
	srv := newTestServer(t)
	update := `{"id":1,"name":"Zeylee G.","email":"zgeronimo@testdomain.com","phone_extension":"1001","status":"Busy"}`

	resp, _ := do(t, srv, http.MethodPut, "/api/v1/agents/1", update)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body := do(t, srv, http.MethodGet, "/api/v1/agents/1", "")
	assert.Equal(t, "Zeylee G.", body["data"].(map[string]any)["name"])

	resp, body = do(t, srv, http.MethodPut, "/api/v1/agents/2", update)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path and body ids must match")
	assert.Equal(t, "BAD_REQUEST", errorCode(body))

	missing := strings.Replace(update, `"id":1`, `"id":50`, 1)
	resp, _ = do(t, srv, http.MethodPut, "/api/v1/agents/50", missing)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAgents_StatusPatch(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodPatch, "/api/v1/agents/3/status", `{"status":"Available"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body := do(t, srv, http.MethodGet, "/api/v1/agents/3", "")
	assert.Equal(t, "Available", body["data"].(map[string]any)["status"])

	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/agents/3/status", `{"status":"Away"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/agents/30/status", `{"status":"Busy"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAgents_DeleteReleasesCallsAndTickets(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodDelete, "/api/v1/agents/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body := do(t, srv, http.MethodGet, "/api/v1/calls/1", "")
	assert.Nil(t, body["data"].(map[string]any)["agent_id"])
	_, body = do(t, srv, http.MethodGet, "/api/v1/tickets/1", "")
	assert.Nil(t, body["data"].(map[string]any)["agent_id"])
	_, body = do(t, srv, http.MethodGet, "/api/v1/calls/2", "")
	assert.Equal(t, float64(2), body["data"].(map[string]any)["agent_id"])

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/agents/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, metricsBody := doRaw(t, srv, "/metrics")
	assert.Contains(t, metricsBody, `test_agent_references_cleared_total{referrer="calls"} 1`)
}

func TestCustomers_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/customers/CUST002", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Crisostomo Ibarra", body["data"].(map[string]any)["name"])

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/customers", `{"id":"CUST003","name":"Sisa","email":"sisa@test.com"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/api/v1/customers/CUST003", `{"id":"CUST003","name":"Narcisa"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/customers/CUST001", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = do(t, srv, http.MethodGet, "/api/v1/calls/1", "")
	assert.Equal(t, "CUST001", body["data"].(map[string]any)["customer_id"], "customer deletion keeps calls untouched")

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/customers/CUST001", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCalls_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	call := `{"id":3,"customer_id":"CUST002","agent_id":3,"start_time":"2025-02-11T09:00:00Z","status":"Queued"}`
	resp, _ := do(t, srv, http.MethodPost, "/api/v1/calls", call)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	ghost := `{"id":4,"customer_id":"CUST002","agent_id":42,"start_time":"2025-02-11T09:00:00Z","status":"Queued"}`
	resp, body := do(t, srv, http.MethodPost, "/api/v1/calls", ghost)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "an unknown agent is a bad request")
	assert.Equal(t, "BAD_REQUEST", errorCode(body))

	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/calls/3/agent", `{"agent_id":null}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, body = do(t, srv, http.MethodGet, "/api/v1/calls/3", "")
	assert.Nil(t, body["data"].(map[string]any)["agent_id"])

	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/calls/3/agent", `{"agent_id":42}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/calls/30/agent", `{"agent_id":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/calls/3", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCalls_Paged(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/calls/paged?pageNumber=5&pageSize=1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := body["data"].(map[string]any)
	assert.Equal(t, []any{}, page["items"])
	assert.Equal(t, float64(2), page["totalCount"])
	assert.Equal(t, float64(5), page["pageNumber"])
	assert.Equal(t, float64(1), page["pageSize"])

	_, body = do(t, srv, http.MethodGet, "/api/v1/calls/paged", "")
	page = body["data"].(map[string]any)
	assert.Equal(t, float64(1), page["pageNumber"])
	assert.Equal(t, float64(10), page["pageSize"])
	assert.Len(t, page["items"], 2)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/calls/paged?pageSize=ten", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTickets_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	_, body := do(t, srv, http.MethodGet, "/api/v1/tickets/paged?pageNumber=2&pageSize=1", "")
	page := body["data"].(map[string]any)
	items := page["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Billing discrepancy", items[0].(map[string]any)["description"])

	ticket := `{"id":3,"customer_id":"CUST001","status":"Open","priority":"Low","created_at":"2025-02-11T10:00:00Z","description":"Password reset"}`
	resp, _ := do(t, srv, http.MethodPost, "/api/v1/tickets", ticket)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPatch, "/api/v1/tickets/3/agent", `{"agent_id":2}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, body = do(t, srv, http.MethodGet, "/api/v1/tickets/3", "")
	assert.Equal(t, float64(2), body["data"].(map[string]any)["agent_id"])

	resp, _ = do(t, srv, http.MethodPut, "/api/v1/tickets/4", ticket)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["data"].(map[string]any)["database"])

	resp, _ = do(t, srv, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth_DatabaseDown(t *testing.T) {
	handler := NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("connection refused") }), logger.NoOpLogger())
	rec := httptest.NewRecorder()

	handler.HealthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")
}

func doRaw(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}
