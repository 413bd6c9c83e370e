package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/db"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type apiTestClock struct {
	mu      sync.Mutex
	current time.Time
}

func (clock *apiTestClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

func (clock *apiTestClock) Advance(duration time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(duration)
}

type pickerResponse struct {
	Applied bool          `json:"applied"`
	Picker  pickerPayload `json:"picker"`
	Token   string        `json:"token"`
}

func newPickerTestApp(t *testing.T) (*fiber.App, *apiTestClock) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "rangepicker-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	clock := &apiTestClock{current: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)}
	handler, err := newHandlerWithClock(database, testSecretKey, time.UTC, time.Hour, clock.Now)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	t.Cleanup(handler.Pickers().Close)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, clock
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %q: %v", string(body), err)
	}
}

func createTestPicker(t *testing.T, app *fiber.App, options string) (string, string) {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/pickers", "", options)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	created := pickerResponse{}
	decodeJSON(t, response, &created)
	if created.Picker.ID == "" || created.Token == "" {
		t.Fatalf("expected picker id and token, got %+v", created)
	}
	return created.Picker.ID, created.Token
}

func pickerAction(t *testing.T, app *fiber.App, pickerID string, token string, action string, body string) pickerResponse {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/pickers/"+pickerID+"/"+action, token, body)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for %s, got %d", action, response.StatusCode)
	}
	result := pickerResponse{}
	decodeJSON(t, response, &result)
	return result
}

func refreshPickerToken(t *testing.T, app *fiber.App, pickerID string, token string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/pickers/"+pickerID+"/token", token, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for token refresh, got %d", response.StatusCode)
	}
	refreshed := struct {
		Token string `json:"token"`
	}{}
	decodeJSON(t, response, &refreshed)
	if refreshed.Token == "" {
		t.Fatal("expected refreshed token")
	}
	return refreshed.Token
}

// advanceWithRefresh moves the clock forward in steps shorter than the token
// TTL, refreshing the token at each step.
func advanceWithRefresh(t *testing.T, app *fiber.App, clock *apiTestClock, pickerID string, token string, total time.Duration) string {
	t.Helper()

	const step = 30 * time.Minute
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		clock.Advance(min(step, total-elapsed))
		token = refreshPickerToken(t, app, pickerID, token)
	}
	return token
}
