package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"budgetly/internal/handlers"
	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
	"budgetly/internal/seed"
	"budgetly/internal/services"
	"budgetly/internal/storage"
	"budgetly/internal/store"
	"budgetly/internal/testutil"
	"budgetly/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack with an empty in-memory store.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return newApp(t, testutil.NewTestStore(t, models.Snapshot{}), nil)
}

// setupPersistentApp creates an application stack backed by db, loading
// whatever records the database already holds.
func setupPersistentApp(t *testing.T, db *gorm.DB) *testApp {
	t.Helper()

	repo := storage.NewRepository(db)
	st := testutil.NewTestStore(t, models.Snapshot{})
	snap, err := seed.FirstNonEmpty(repo).Seed(t.Context(), st.Now())
	if err != nil {
		t.Fatalf("failed to load records: %v", err)
	}
	st.Replace(snap)
	return newApp(t, st, repo)
}

func newApp(t *testing.T, st *store.Store, persister storage.Persister) *testApp {
	t.Helper()

	m := metrics.New()
	recorder := services.NewRecorder(st, persister, m)
	recorder.Refresh()

	router := handlers.NewRouter(handlers.RouterConfig{
		Expenses: services.NewExpenseService(st, recorder),
		Budgets:  services.NewBudgetService(st, recorder),
		Insights: services.NewInsightService(st),
		Metrics:  m,
		Location: time.UTC,
	})
	return &testApp{Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
