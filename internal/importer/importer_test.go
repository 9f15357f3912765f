package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ronginooth/citepress/internal/style"
)

const validStyleJSON = `{
	"id": "my-journal",
	"name": "my-journal",
	"displayName": "My Journal",
	"sort": {"mode": "alphabetical"},
	"authorRules": {"etAlAfter": 3, "delimiter": ", ", "finalDelimiter": " & ", "format": "LastName FirstInitial"},
	"title": {"include": true},
	"journal": {"useVenue": true, "useItalic": true},
	"volume": {"include": true, "format": "range"},
	"year": {"format": "parentheses"},
	"doi": {"include": true},
	"template": "{authors} {title} {journal} {volume}, {pages} {year} {doi}"
}`

func TestImportJSON(t *testing.T) {
	s, err := ImportJSON([]byte(validStyleJSON))
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if s.ID != "my-journal" || s.Sort.Mode != style.SortAlphabetical {
		t.Errorf("imported style = %+v", s)
	}
}

func TestImportJSONMissingPlaceholder(t *testing.T) {
	broken := strings.Replace(validStyleJSON, "{year} ", "", 1)
	_, err := ImportJSON([]byte(broken))
	if err == nil {
		t.Fatal("ImportJSON succeeded, want error")
	}
	if !strings.Contains(err.Error(), `"{year}"`) {
		t.Errorf("error %q does not name the missing placeholder", err)
	}
}

func TestImportForm(t *testing.T) {
	form := FormPayload{
		ID:             "lab-style",
		Name:           "lab-style",
		DisplayName:    "Lab Style",
		SortMode:       style.SortCitationOrder,
		Template:       "{authors} {journal} {year}",
		EtAlAfter:      4,
		Delimiter:      ", ",
		FinalDelimiter: " & ",
		NameFormat:     "LastName FirstInitial",
		IncludeTitle:   true,
		YearFormat:     style.YearParentheses,
	}

	s, err := ImportForm(form)
	if err != nil {
		t.Fatalf("ImportForm error: %v", err)
	}
	if s.ID != "lab-style" || s.AuthorRules.EtAlAfter != 4 {
		t.Errorf("imported style = %+v", s)
	}
}

func TestImportFormValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FormPayload)
		wantMsg string
	}{
		{
			name:    "missing sort mode",
			mutate:  func(f *FormPayload) { f.SortMode = "" },
			wantMsg: `"mode"`,
		},
		{
			name:    "missing id",
			mutate:  func(f *FormPayload) { f.ID = "" },
			wantMsg: `"id"`,
		},
		{
			name:    "template missing journal placeholder",
			mutate:  func(f *FormPayload) { f.Template = "{authors} {year}" },
			wantMsg: `"{journal}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := FormPayload{
				ID:          "x",
				Name:        "x",
				DisplayName: "X",
				SortMode:    style.SortCitationOrder,
				Template:    "{authors} {journal} {year}",
			}
			tt.mutate(&form)
			_, err := ImportForm(form)
			if err == nil {
				t.Fatal("ImportForm succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %s", err, tt.wantMsg)
			}
		})
	}
}

func TestImportURL(t *testing.T) {
	t.Run("JSON accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(validStyleJSON))
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()))
		s, err := c.ImportURL(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("ImportURL error: %v", err)
		}
		if s.ID != "my-journal" {
			t.Errorf("imported style id = %q", s.ID)
		}
	})

	t.Run("CSL content type rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/vnd.citationstyles.style+xml")
			w.Write([]byte(`<style/>`))
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()))
		_, err := c.ImportURL(context.Background(), srv.URL)
		if err == nil {
			t.Fatal("ImportURL succeeded, want error")
		}
		if !strings.Contains(err.Error(), "not yet implemented") {
			t.Errorf("error %q does not mention missing CSL support", err)
		}
		if !IsUnsupportedFormat(err) {
			t.Errorf("error %q does not wrap ErrUnsupportedFormat", err)
		}
	})

	t.Run("XML content type rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			w.Write([]byte(`<style/>`))
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()))
		if _, err := c.ImportURL(context.Background(), srv.URL); err == nil {
			t.Fatal("ImportURL succeeded, want error")
		}
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()))
		_, err := c.ImportURL(context.Background(), srv.URL)
		if err == nil {
			t.Fatal("ImportURL succeeded, want error")
		}
		if !IsFetchFailed(err) {
			t.Errorf("error %q does not wrap ErrFetchFailed", err)
		}
	})

	t.Run("invalid style body fails validation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "x"}`))
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()))
		_, err := c.ImportURL(context.Background(), srv.URL)
		if err == nil {
			t.Fatal("ImportURL succeeded, want error")
		}
		if !strings.Contains(err.Error(), "missing required field") {
			t.Errorf("error %q, want validation failure", err)
		}
	})

	t.Run("auth token sent as bearer", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(validStyleJSON))
		}))
		defer srv.Close()

		c := NewClient(WithHTTPClient(srv.Client()), WithAuthToken("sekrit"))
		if _, err := c.ImportURL(context.Background(), srv.URL); err != nil {
			t.Fatalf("ImportURL error: %v", err)
		}
		if gotAuth != "Bearer sekrit" {
			t.Errorf("Authorization = %q, want bearer token", gotAuth)
		}
	})
}
