//go:build e2e

// Package e2e exercises the full HTTP surface against a running instance
// with live PostgreSQL and Redis backends.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/userdir/userdir/internal/repository"
	"github.com/userdir/userdir/internal/testutil"
)

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type probeResponse struct {
	Key            string `json:"key"`
	SetValue       string `json:"set_value"`
	RetrievedValue string `json:"retrieved_value"`
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("USERDIR_BASE_URL", "http://localhost:8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatalf("DATABASE_URL is required for e2e tests")
	}

	resetStore(t, dbURL)

	client := &http.Client{Timeout: 10 * time.Second}

	// Unique suffix keeps reruns against a shared database from colliding.
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	username := "alice-" + suffix
	email := "alice-" + suffix + "@example.com"

	created := createUser(t, client, baseURL, username, email)
	if created.ID <= 0 {
		t.Errorf("expected assigned ID, got %d", created.ID)
	}
	if _, err := time.Parse(time.RFC3339, created.CreatedAt); err != nil {
		t.Errorf("created_at %q is not ISO-8601: %v", created.CreatedAt, err)
	}

	// The create must have invalidated the cached listing.
	listing := listUsers(t, client, baseURL)
	if !containsUser(listing, created.ID, username) {
		t.Errorf("listing missing created user %s", username)
	}

	// A second read inside the TTL window is served from cache, byte-identical.
	first := rawListing(t, client, baseURL)
	second := rawListing(t, client, baseURL)
	if !bytes.Equal(first, second) {
		t.Errorf("cached listing differs from original:\n%s\n%s", first, second)
	}

	assertMissingFieldsRejected(t, client, baseURL)
	assertProbeRoundTrip(t, client, baseURL)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// resetStore clears the users table so listings stay small across runs.
func resetStore(t *testing.T, dbURL string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := testutil.TruncateUsers(ctx, repo.Pool()); err != nil {
		t.Fatalf("truncate users: %v", err)
	}
}

func createUser(t *testing.T, client *http.Client, baseURL, username, email string) userResponse {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
	})

	resp, err := client.Post(baseURL+"/users", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, payload)
	}

	var created userResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	if created.Username != username || created.Email != email {
		t.Errorf("unexpected created record: %+v", created)
	}

	return created
}

func rawListing(t *testing.T, client *http.Client, baseURL string) []byte {
	t.Helper()

	resp, err := client.Get(baseURL + "/users")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read listing: %v", err)
	}
	return payload
}

func listUsers(t *testing.T, client *http.Client, baseURL string) []userResponse {
	t.Helper()

	var listing []userResponse
	if err := json.Unmarshal(rawListing(t, client, baseURL), &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	return listing
}

func containsUser(listing []userResponse, id int64, username string) bool {
	for _, u := range listing {
		if u.ID == id && u.Username == username {
			return true
		}
	}
	return false
}

func assertMissingFieldsRejected(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	resp, err := client.Post(baseURL+"/users", "application/json",
		bytes.NewReader([]byte(`{"username":"incomplete"}`)))
	if err != nil {
		t.Fatalf("post incomplete user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email, got %d", resp.StatusCode)
	}

	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Error != "Username and email are required" {
		t.Errorf("unexpected error message: %q", errBody.Error)
	}
}

func assertProbeRoundTrip(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	resp, err := client.Get(baseURL + "/redis-test")
	if err != nil {
		t.Fatalf("redis-test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var probe probeResponse
	if err := json.NewDecoder(resp.Body).Decode(&probe); err != nil {
		t.Fatalf("decode probe response: %v", err)
	}

	if probe.SetValue == "" || probe.SetValue != probe.RetrievedValue {
		t.Errorf("probe round trip mismatch: set %q, retrieved %q", probe.SetValue, probe.RetrievedValue)
	}
}
