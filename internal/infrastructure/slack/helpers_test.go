package slack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/paulera/team-stats/internal/config"
)

// fakeSlack はSlack Web APIを模したテスト用サーバー
type fakeSlack struct {
	mu       sync.Mutex
	handlers map[string]func(form map[string]string) any
	calls    map[string][]map[string]string
}

func newFakeSlack(t *testing.T) (*fakeSlack, *Client) {
	t.Helper()

	fake := &fakeSlack{
		handlers: make(map[string]func(form map[string]string) any),
		calls:    make(map[string][]map[string]string),
	}
	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)

	client := NewClient(config.SlackConfig{
		Token:    "xoxp-test",
		APIURL:   server.URL + "/",
		PageSize: 2,
	})
	return fake, client
}

func (f *fakeSlack) handle(method string, handler func(form map[string]string) any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = handler
}

func (f *fakeSlack) callsTo(method string) []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSlack) serve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := make(map[string]string, len(r.Form))
	for key := range r.Form {
		form[key] = r.Form.Get(key)
	}

	method := r.URL.Path[1:]
	f.mu.Lock()
	f.calls[method] = append(f.calls[method], form)
	handler, ok := f.handlers[method]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "unknown_method"})
		return
	}
	_ = json.NewEncoder(w).Encode(handler(form))
}

func slackError(code string) map[string]any {
	return map[string]any{"ok": false, "error": code}
}
