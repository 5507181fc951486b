package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parking_service/internal/adapter/http/handlers"
	"parking_service/internal/adapter/http/handlers/mocks"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/metrics"
	"parking_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

type testRouter struct {
	engine   *gin.Engine
	auth     *mocks.MockIAuthUseCase
	spaces   *mocks.MockISpaceUseCase
	sessions *mocks.MockISessionUseCase
}

func newRouter(t *testing.T) testRouter {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	auth := mocks.NewMockIAuthUseCase(ctrl)
	spaces := mocks.NewMockISpaceUseCase(ctrl)
	sessions := mocks.NewMockISessionUseCase(ctrl)
	customers := mocks.NewMockICustomerUseCase(ctrl)
	reports := mocks.NewMockIReportUseCase(ctrl)

	engine := NewRouter(Dependencies{
		Auth:     middleware.NewAuthMiddleware(auth),
		Metrics:  metrics.NewRecorder(),
		Spaces:   handlers.NewSpaceHandler(spaces),
		Sessions: handlers.NewSessionHandler(sessions),
		Customer: handlers.NewCustomerHandler(customers, fixedClock{}),
		Users:    handlers.NewAuthHandler(auth),
		Reports:  handlers.NewReportHandler(reports),
	})
	return testRouter{engine: engine, auth: auth, spaces: spaces, sessions: sessions}
}

func (r testRouter) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Public(t *testing.T) {
	r := newRouter(t)

	w := r.do(http.MethodGet, "/v1/ping", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}

	w = r.do(http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "parking_http_requests_total") {
		t.Fatalf("expected metrics exposition, got %d", w.Code)
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	r := newRouter(t)

	w := r.do(http.MethodGet, "/v1/sessions", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	r.auth.EXPECT().ValidateToken("expired").Return(usecase.Identity{}, usecase.ErrInvalidToken)
	w = r.do(http.MethodGet, "/v1/sessions", "expired", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRouter_OperatorFlow(t *testing.T) {
	r := newRouter(t)
	operator := usecase.Identity{UserID: "op-1", Role: entities.RoleOperator}
	r.auth.EXPECT().ValidateToken("op").Return(operator, nil).AnyTimes()

	r.sessions.EXPECT().
		OpenSession(gomock.Any(), usecase.OpenSessionInput{Plate: "ABC123", Category: "car", OperatorID: "op-1"}).
		Return(usecase.OpenSessionResult{Session: entities.Session{ID: "s-1", SpaceCode: "C1"}, SpaceCode: "C1"}, nil)

	w := r.do(http.MethodPost, "/v1/sessions", "op", `{"plate":"ABC123","category":"car"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	// Admin-only routes reject operators before reaching the handler.
	w = r.do(http.MethodPost, "/v1/spaces", "op", `{"code":"C9","category":"car"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	w = r.do(http.MethodDelete, "/v1/sessions/id/s-1", "op", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRouter_AdminFlow(t *testing.T) {
	r := newRouter(t)
	admin := usecase.Identity{UserID: "adm", Role: entities.RoleAdmin}
	r.auth.EXPECT().ValidateToken("adm").Return(admin, nil).AnyTimes()

	r.spaces.EXPECT().Create(gomock.Any(), "C9", "car", entities.Location{}).Return(entities.Space{Code: "C9"}, nil)
	w := r.do(http.MethodPost, "/v1/spaces", "adm", `{"code":"C9","category":"car"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	r.sessions.EXPECT().PurgeSession(gomock.Any(), "s-1").Return(nil)
	w = r.do(http.MethodDelete, "/v1/sessions/id/s-1", "adm", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
