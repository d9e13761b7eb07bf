package funtranslations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/pokedex/pkg/integrations"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, server.Client(), nil)
}

func TestTranslate(t *testing.T) {
	var gotPath, gotText string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotText = r.URL.Query().Get("text")
		w.Write([]byte(`{"success":{"total":1},"contents":{"translated":"Lost a planet, master obiwan has.","text":"Master Obiwan has lost a planet.","translation":"yoda"}}`))
	})

	res, err := client.Translate(context.Background(), StyleYoda, "Master Obiwan has lost a planet.")
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if gotPath != "/yoda.json" {
		t.Errorf("path = %q, want %q", gotPath, "/yoda.json")
	}
	if gotText != "Master Obiwan has lost a planet." {
		t.Errorf("text query = %q", gotText)
	}
	if !res.OK() {
		t.Fatal("OK() = false, want true")
	}
	if *res.Translated != "Lost a planet, master obiwan has." {
		t.Errorf("Translated = %q", *res.Translated)
	}
	if res.Total != 1 || res.Translation != "yoda" {
		t.Errorf("Total = %d, Translation = %q", res.Total, res.Translation)
	}
}

func TestTranslateShakespearePath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":{"total":1},"contents":{"translated":"x"}}`))
	})

	if _, err := client.Translate(context.Background(), StyleShakespeare, "hello & goodbye"); err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if gotPath != "/shakespeare.json" {
		t.Errorf("path = %q, want %q", gotPath, "/shakespeare.json")
	}
}

func TestTranslateSecretHeader(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"public tier", "", ""},
		{"with secret", "s3cret", "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := "unset"
			base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get(SecretHeader)
				w.Write([]byte(`{"contents":{"translated":"x"}}`))
			})

			if _, err := base.WithSecret(tt.secret).Translate(context.Background(), StyleYoda, "a"); err != nil {
				t.Fatalf("Translate() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", SecretHeader, got, tt.want)
			}
		})
	}
}

func TestTranslateRejectsTrailingData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"contents":{"translated":"Yoda says"}} not json at all`))
	})

	res, err := client.Translate(context.Background(), StyleYoda, "orig")
	if !errors.Is(err, integrations.ErrDecode) {
		t.Errorf("Translate() = %+v, %v; want ErrDecode", res, err)
	}
}

func TestTranslateMissingOrEmptyTranslated(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
		want   string
	}{
		{"absent field", `{"success":{"total":1},"contents":{"text":"a"}}`, false, ""},
		{"null field", `{"success":{"total":1},"contents":{"translated":null}}`, false, ""},
		{"absent contents", `{"success":{"total":1}}`, false, ""},
		{"json null body", `null`, false, ""},
		{"empty string", `{"success":{"total":1},"contents":{"translated":""}}`, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			res, err := client.Translate(context.Background(), StyleYoda, "a")
			if err != nil {
				t.Fatalf("Translate() error: %v", err)
			}
			if res.OK() != tt.wantOK {
				t.Fatalf("OK() = %v, want %v", res.OK(), tt.wantOK)
			}
			if tt.wantOK && *res.Translated != tt.want {
				t.Errorf("Translated = %q, want %q", *res.Translated, tt.want)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, "", integrations.ErrNotFound},
		{"server error", http.StatusInternalServerError, "", nil},
		{"invalid json", http.StatusOK, `invalid json`, integrations.ErrDecode},
		{"json string literal", http.StatusOK, `"invalid json"`, integrations.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			res, err := client.Translate(context.Background(), StyleShakespeare, "a")
			if err == nil {
				t.Fatalf("Translate() = %+v, want error", res)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResultOKNil(t *testing.T) {
	var r *Result
	if r.OK() {
		t.Error("nil Result should not be OK")
	}
}
