package bot

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		token:  "test-token",
		apiURL: srv.URL,
		httpc:  &http.Client{Timeout: 2 * time.Second},
		quickc: &http.Client{Timeout: time.Second},
	}
}

// TestCreateInvoiceLink_OK verifies the result string is unwrapped from the
// platform envelope.
func TestCreateInvoiceLink_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/createInvoiceLink" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["currency"] != "XTR" {
			t.Errorf("currency: want XTR, got %v", body["currency"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": "https://t.me/$abc"})
	}))
	defer srv.Close()

	link, err := testClient(srv).CreateInvoiceLink("premium_weekly", 99, 12345)
	if err != nil {
		t.Fatalf("CreateInvoiceLink: %v", err)
	}
	if link != "https://t.me/$abc" {
		t.Errorf("link: got %q", link)
	}
}

// TestCreateInvoiceLink_Rejected verifies an ok=false response surfaces as an
// APIError with the platform's description.
func TestCreateInvoiceLink_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": false, "error_code": 400, "description": "CURRENCY_INVALID",
		})
	}))
	defer srv.Close()

	_, err := testClient(srv).CreateInvoiceLink("premium_weekly", 99, 12345)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Description != "CURRENCY_INVALID" || apiErr.Code != 400 {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

// TestAnswerPreCheckoutQuery_Approve pins the request shape: id + ok, no
// error_message on approval.
func TestAnswerPreCheckoutQuery_Approve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/answerPreCheckoutQuery" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["pre_checkout_query_id"] != "q1" {
			t.Errorf("query id: got %v", body["pre_checkout_query_id"])
		}
		if body["ok"] != true {
			t.Errorf("ok: got %v", body["ok"])
		}
		if _, has := body["error_message"]; has {
			t.Error("error_message must be absent on approval")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": true})
	}))
	defer srv.Close()

	if err := testClient(srv).AnswerPreCheckoutQuery("q1", true, ""); err != nil {
		t.Fatalf("AnswerPreCheckoutQuery: %v", err)
	}
}

// TestAnswerPreCheckoutQuery_Reject verifies the rejection reason travels as
// error_message.
func TestAnswerPreCheckoutQuery_Reject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["ok"] != false || body["error_message"] != "out of stock" {
			t.Errorf("unexpected body: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": true})
	}))
	defer srv.Close()

	if err := testClient(srv).AnswerPreCheckoutQuery("q1", false, "out of stock"); err != nil {
		t.Fatalf("AnswerPreCheckoutQuery: %v", err)
	}
}

// TestSendMessage_TransportError verifies a dead endpoint surfaces as a plain
// error, not an APIError.
func TestSendMessage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := testClient(srv)
	srv.Close()

	err := c.SendMessage(42, "hi")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be an APIError: %v", err)
	}
}

// TestSendInvoice_OK verifies the chat_id is merged into the shared invoice
// body.
func TestSendInvoice_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["chat_id"] != float64(42) {
			t.Errorf("chat_id: got %v", body["chat_id"])
		}
		if body["payload"] == "" {
			t.Error("payload missing")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": map[string]any{}})
	}))
	defer srv.Close()

	if err := testClient(srv).SendInvoice(42, "premium_weekly", 99, 7); err != nil {
		t.Fatalf("SendInvoice: %v", err)
	}
}
