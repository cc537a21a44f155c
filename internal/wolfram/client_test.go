package wolfram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const fullResultsPayload = `{
	"queryresult": {
		"success": true,
		"error": false,
		"pods": [
			{
				"title": "Input interpretation",
				"primary": false,
				"subpods": [{"plaintext": "2 + 2"}]
			},
			{
				"title": "Result",
				"primary": true,
				"subpods": [{"plaintext": "4"}]
			},
			{
				"title": "Number line",
				"primary": false,
				"subpods": [{"plaintext": ""}]
			},
			{
				"title": "Number name",
				"primary": false,
				"subpods": [{"plaintext": "four"}]
			}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("TESTAPPID")
	c.SetBaseURL(srv.URL)
	return c
}

func TestQuery(t *testing.T) {
	var gotQuery map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"appid":  r.URL.Query().Get("appid"),
			"input":  r.URL.Query().Get("input"),
			"output": r.URL.Query().Get("output"),
			"format": r.URL.Query().Get("format"),
		}
		w.Write([]byte(fullResultsPayload))
	})

	res, err := c.Query(context.Background(), "2+2")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if gotQuery["appid"] != "TESTAPPID" || gotQuery["input"] != "2+2" {
		t.Errorf("request params = %v", gotQuery)
	}
	if gotQuery["output"] != "json" || gotQuery["format"] != "plaintext" {
		t.Errorf("output params = %v", gotQuery)
	}

	if res.PrimaryResult != "4" {
		t.Errorf("primary = %q, want %q", res.PrimaryResult, "4")
	}
	// Input pod is dropped, empty pod is dropped, one explanation left.
	if len(res.Explanations) != 1 || res.Explanations[0].Plaintext != "four" {
		t.Errorf("explanations = %+v", res.Explanations)
	}
}

func TestQueryNoPrimaryPromotesFirstPod(t *testing.T) {
	payload := `{"queryresult":{"success":true,"error":false,"pods":[
		{"title":"Decimal form","primary":false,"subpods":[{"plaintext":"0.5"}]},
		{"title":"Percentage","primary":false,"subpods":[{"plaintext":"50%"}]}
	]}}`
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload))
	})

	res, err := c.Query(context.Background(), "1/2")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.PrimaryResult != "0.5" {
		t.Errorf("primary = %q", res.PrimaryResult)
	}
	if len(res.Explanations) != 1 || res.Explanations[0].Title != "Percentage" {
		t.Errorf("explanations = %+v", res.Explanations)
	}
}

func TestQueryFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"queryresult":{"success":false,"error":false,"pods":[]}}`))
	})
	if _, err := c.Query(context.Background(), "gibberish"); err == nil {
		t.Error("expected error for unsuccessful query")
	}
}

func TestQueryValidation(t *testing.T) {
	c := NewClient("")
	if _, err := c.Query(context.Background(), "2+2"); err != ErrNoAppID {
		t.Errorf("err = %v, want ErrNoAppID", err)
	}

	c = NewClient("APPID")
	if _, err := c.Query(context.Background(), "   "); err == nil {
		t.Error("expected error for blank input")
	}
}
