package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a recording HTTP server standing in for an external provider.
type ApiMock struct {
	mu               sync.Mutex
	requestsReceived map[string][]map[string]any
	responses        map[string]mockResponse
	server           *httptest.Server
}

type mockResponse struct {
	status int
	body   any
}

// NewApiServer creates an unstarted mock.
func NewApiServer() *ApiMock {
	return &ApiMock{
		requestsReceived: map[string][]map[string]any{},
		responses:        map[string]mockResponse{},
	}
}

// Start serves requests until the test binary exits.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	a.mu.Lock()
	a.requestsReceived[key] = append(a.requestsReceived[key], request)
	response, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		response = mockResponse{status: http.StatusOK, body: map[string]any{}}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	_ = json.NewEncoder(w).Encode(response.body)
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse fixes the reply for every request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = mockResponse{status: status, body: response}
}

// GetRequests returns the decoded bodies received on method and path, oldest first.
func (a *ApiMock) GetRequests(method, path string) []map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]map[string]any(nil), a.requestsReceived[method+path]...)
}

// Clear forgets received requests and configured responses.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requestsReceived = map[string][]map[string]any{}
	a.responses = map[string]mockResponse{}
}
