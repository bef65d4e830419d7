package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"localflavor/internal/service"
)

func newTestRouter(options ...service.Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(service.New(options...), "localflavor-test")
}

func doRequest(t *testing.T, router *gin.Engine, method string, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	if got := w.Header().Get("Content-Type"); got != problemContentType {
		t.Fatalf("expected %s content type, got %q", problemContentType, got)
	}
	var p ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	return p
}

func TestHealthSetsRequestID(t *testing.T) {
	router := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	id, err := uuid.Parse(w.Header().Get(headerRequestID))
	if err != nil || id.Version() != 7 {
		t.Fatalf("expected UUIDv7 request id, got %q", w.Header().Get(headerRequestID))
	}
}

func TestValidateNormalizesValue(t *testing.T) {
	router := newTestRouter()
	w := doRequest(t, router, http.MethodPost, "/api/v1/validators/br.phone", `{"value":"4135623464"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out service.ValidateOutput
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Value != "41-3562-3464" || out.Validator != "br.phone" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestValidateRejectedValueIsUnprocessable(t *testing.T) {
	router := newTestRouter()
	w := doRequest(t, router, http.MethodPost, "/api/v1/validators/ca.sin", `{"value":"046 454 286"}`, nil)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	p := decodeProblem(t, w)
	if p.Kind != "invalid" || p.Validator != "ca.sin" {
		t.Fatalf("unexpected problem %+v", p)
	}
	if p.Detail != "Enter a valid Canadian Social Insurance number in XXX-XXX-XXX format." {
		t.Fatalf("unexpected detail %q", p.Detail)
	}
	if p.RequestID == "" || p.Instance != "/api/v1/validators/ca.sin" {
		t.Fatalf("expected request id and instance, got %+v", p)
	}
}

func TestValidateBlankPolicyOverHTTP(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/validators/us.state", `{"value":null}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if p := decodeProblem(t, w); p.Kind != "empty" {
		t.Fatalf("expected empty kind, got %q", p.Kind)
	}

	w = doRequest(t, router, http.MethodPost, "/api/v1/validators/us.state", `{"value":"","allow_blank":true}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestValidateNonStringValueIsInvalid(t *testing.T) {
	router := newTestRouter()
	w := doRequest(t, router, http.MethodPost, "/api/v1/validators/us.state", `{"value":12}`, nil)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if p := decodeProblem(t, w); p.Kind != "invalid" {
		t.Fatalf("expected invalid kind, got %q", p.Kind)
	}
}

func TestValidateRequestErrors(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "unknown validator", path: "/api/v1/validators/fr.siren", body: `{"value":"x"}`, want: http.StatusNotFound},
		{name: "malformed body", path: "/api/v1/validators/br.cpf", body: `{"value":`, want: http.StatusBadRequest},
		{name: "negative bound", path: "/api/v1/validators/br.cpf", body: `{"value":"x","max_length":-1}`, want: http.StatusBadRequest},
		{name: "inverted bounds", path: "/api/v1/validators/br.cpf", body: `{"value":"x","min_length":5,"max_length":2}`, want: http.StatusBadRequest},
		{name: "unknown route", path: "/api/v1/nothing", body: `{}`, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		w := doRequest(t, router, http.MethodPost, tt.path, tt.body, nil)
		if w.Code != tt.want {
			t.Fatalf("%s: expected %d, got %d: %s", tt.name, tt.want, w.Code, w.Body.String())
		}
		decodeProblem(t, w)
	}
}

func TestValidateBatch(t *testing.T) {
	router := newTestRouter()
	body := `{"items":[
		{"validator":"ca.postal_code","value":"j0x1g0"},
		{"validator":"ca.postal_code","value":"d0x 1g0"},
		{"validator":"br.cpf","value":"66325601726"}
	]}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/validate", body, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out service.BatchOutput
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out.Results))
	}
	if !out.Results[0].Valid || out.Results[0].Value != "J0X 1G0" {
		t.Fatalf("unexpected first result %+v", out.Results[0])
	}
	if out.Results[1].Valid || out.Results[1].Kind != "invalid" {
		t.Fatalf("unexpected second result %+v", out.Results[1])
	}
	if !out.Results[2].Valid {
		t.Fatalf("unexpected third result %+v", out.Results[2])
	}

	w = doRequest(t, router, http.MethodPost, "/api/v1/validate", `{"items":[]}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", w.Code)
	}
}

func TestListEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/validators", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var validators []service.ValidatorOutput
	if err := json.Unmarshal(w.Body.Bytes(), &validators); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(validators) != len(service.DefaultFields()) {
		t.Fatalf("expected %d validators, got %d", len(service.DefaultFields()), len(validators))
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/regions/br/subdivisions", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var states []service.SubdivisionOutput
	if err := json.Unmarshal(w.Body.Bytes(), &states); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(states) != 27 || states[0].Code != "ac" {
		t.Fatalf("unexpected states %+v", states)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/regions/mx/subdivisions", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRequireAuthWhenKeyConfigured(t *testing.T) {
	router := newTestRouter(service.WithAuthConfig("secret", "localflavor-test"))

	w := doRequest(t, router, http.MethodGet, "/api/v1/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health must stay open, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/validators", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/validators", "", map[string]string{"Authorization": "Basic abc"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", w.Code)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "localflavor-test",
		Subject:   "client-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	w = doRequest(t, router, http.MethodGet, "/api/v1/validators", "", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

func TestPanicRecoveryWritesProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(panicRecoveryMiddleware(nil))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := doRequest(t, router, http.MethodGet, "/boom", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if p := decodeProblem(t, w); p.Type != problemTypeInternal {
		t.Fatalf("unexpected problem type %q", p.Type)
	}
}
