package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeGist is an in-memory stand-in for the GitHub Gists API serving a
// single gist.
type FakeGist struct {
	ID    string
	Token string

	mu      sync.Mutex
	files   map[string]string
	patches int
	server  *httptest.Server
}

// NewFakeGist starts a server holding files. When token is non-empty,
// requests without "Authorization: token <token>" get 401.
func NewFakeGist(t *testing.T, id, token string, files map[string]string) *FakeGist {
	t.Helper()
	f := &FakeGist{ID: id, Token: token, files: make(map[string]string)}
	for name, content := range files {
		f.files[name] = content
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

// URL is the API root to use as GISTENV_API_URL.
func (f *FakeGist) URL() string {
	return f.server.URL
}

// File returns the current content of name.
func (f *FakeGist) File(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[name]
}

// Patches returns how many updates the gist received.
func (f *FakeGist) Patches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patches
}

type fakeFile struct {
	Filename string `json:"filename,omitempty"`
	Content  string `json:"content"`
}

type fakeGistBody struct {
	ID    string              `json:"id,omitempty"`
	Files map[string]fakeFile `json:"files"`
}

func (f *FakeGist) serve(w http.ResponseWriter, r *http.Request) {
	if f.Token != "" && r.Header.Get("Authorization") != "token "+f.Token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}
	if r.URL.Path != "/gists/"+f.ID {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
	case http.MethodPatch:
		var body fakeGistBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
			return
		}
		for name, file := range body.Files {
			f.files[name] = file.Content
		}
		f.patches++
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	out := fakeGistBody{ID: f.ID, Files: make(map[string]fakeFile, len(f.files))}
	for name, content := range f.files {
		out.Files[name] = fakeFile{Filename: name, Content: content}
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
