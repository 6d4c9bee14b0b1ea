package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/mtinwala/notes-web/app/web/handlers"
	"github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/platform/env"
	"github.com/mtinwala/notes-web/platform/logger"
	"github.com/mtinwala/notes-web/sys"
)

type NoteTests struct {
	app   http.Handler
	store *note.Memory
	cache *miniredis.Miniredis
}

func TestNote(t *testing.T) {
	log, err := logger.New("Notes-Web-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()

	sys.R.Cache = rdb

	// in-memory store instead of a live mongo collection
	store := note.NewMemory()

	// =======================================================================================================
	// Setup router
	gin.SetMode(gin.TestMode)
	engine := gin.Default()
	engine.LoadHTMLFiles("../../../templates/index.html")

	handlers.MapApp(engine, store)

	tests := NoteTests{
		app:   engine,
		store: store,
		cache: s,
	}

	// =======================================================================================================
	// Run tests

	tests.postNote200(t)
	tests.postCoercesImportant(t)
	tests.getIndex200(t)
	tests.getIndexDefaults(t)
	tests.postThreeDistinct(t)
}

func (nt *NoteTests) postForm(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) findByTitle(t *testing.T, title string) note.Fields {
	docs, err := nt.store.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list store: %v", err)
	}
	for _, doc := range docs {
		if doc["title"] == title {
			return doc
		}
	}
	t.Fatalf("no stored note with title %q", title)
	return nil
}

func (nt *NoteTests) postNote200(t *testing.T) {
	before := nt.store.Len()

	w := nt.postForm(t, url.Values{"important": {"on"}, "title": {"Test"}})

	if w.Code != http.StatusOK {
		t.Fatalf("Test postNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test postNote200: Should be able to unmarshal the response : %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("Test postNote200: Should have received success true in the response: %v", resp)
	}

	if nt.store.Len() != before+1 {
		t.Fatalf("Test postNote200: Should have stored exactly one more note, had %d now %d", before, nt.store.Len())
	}

	doc := nt.findByTitle(t, "Test")
	if doc["important"] != true {
		t.Fatalf("Test postNote200: Should have coerced important=on to true: %v", doc)
	}
}

func (nt *NoteTests) postCoercesImportant(t *testing.T) {
	w := nt.postForm(t, url.Values{"title": {"OtherValue"}, "important": {"yes"}})
	if w.Code != http.StatusOK {
		t.Fatalf("Test postCoercesImportant: Should receive a status code of 200 for the response : %v", w.Code)
	}
	doc := nt.findByTitle(t, "OtherValue")
	if doc["important"] != false {
		t.Fatalf("Test postCoercesImportant: Should have coerced important=yes to false: %v", doc)
	}

	w = nt.postForm(t, url.Values{"title": {"Absent"}})
	if w.Code != http.StatusOK {
		t.Fatalf("Test postCoercesImportant: Should receive a status code of 200 for the response : %v", w.Code)
	}
	doc = nt.findByTitle(t, "Absent")
	if doc["important"] != false {
		t.Fatalf("Test postCoercesImportant: Should have coerced absent important to false: %v", doc)
	}
}

func (nt *NoteTests) getIndex200(t *testing.T) {
	w := nt.postForm(t, url.Values{"title": {"Groceries"}, "desc": {"Milk, eggs"}, "important": {"on"}})
	if w.Code != http.StatusOK {
		t.Fatalf("Test getIndex200: Should receive a status code of 200 for the create response : %v", w.Code)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getIndex200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{"Groceries", "Milk, eggs", "Test", `class="note important"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("Test getIndex200: Should have rendered %q in the page: %v", want, body)
		}
	}
}

func (nt *NoteTests) getIndexDefaults(t *testing.T) {
	// seeded behind the handlers' back, so the cached page has to be dropped
	if _, err := nt.store.Insert(context.Background(), note.Fields{"desc": "only a description"}); err != nil {
		t.Fatalf("Test getIndexDefaults: failed to seed store: %v", err)
	}
	nt.cache.FlushAll()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getIndexDefaults: Should receive a status code of 200 for the response : %v", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "No Title") {
		t.Fatalf("Test getIndexDefaults: Should have rendered the No Title default: %v", body)
	}
	if !strings.Contains(body, "only a description") {
		t.Fatalf("Test getIndexDefaults: Should have rendered the seeded description: %v", body)
	}
}

func (nt *NoteTests) postThreeDistinct(t *testing.T) {
	before := nt.store.Len()

	for i := 1; i <= 3; i++ {
		w := nt.postForm(t, url.Values{"title": {fmt.Sprintf("Sequence %d", i)}})
		if w.Code != http.StatusOK {
			t.Fatalf("Test postThreeDistinct: Should receive a status code of 200 for the response : %v", w.Code)
		}
	}

	if nt.store.Len() != before+3 {
		t.Fatalf("Test postThreeDistinct: Should have stored three more notes, had %d now %d", before, nt.store.Len())
	}

	docs, err := nt.store.List(context.Background())
	if err != nil {
		t.Fatalf("Test postThreeDistinct: failed to list store: %v", err)
	}
	seen := map[string]bool{}
	for _, doc := range docs {
		id, ok := doc["_id"].(string)
		if !ok || id == "" {
			t.Fatalf("Test postThreeDistinct: Should have a non-empty string id on every note: %v", doc)
		}
		if seen[id] {
			t.Fatalf("Test postThreeDistinct: Should have distinct ids, %s repeated", id)
		}
		seen[id] = true
	}
}
