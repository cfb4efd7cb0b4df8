package bot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	token  string
	apiURL string
	httpc  *http.Client
	// quickc answers pre-checkout queries. Its timeout has to leave room for
	// the whole round trip inside the platform's 10s window, so it is half.
	quickc *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:  token,
		apiURL: "https://api.telegram.org/bot" + token,
		httpc:  &http.Client{Timeout: 10 * time.Second},
		quickc: &http.Client{Timeout: 5 * time.Second},
	}
}

// APIError is a rejection from the platform (ok=false), as opposed to a
// transport failure, which surfaces as a plain wrapped error.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %s (code %d)", e.Method, e.Description, e.Code)
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

func (c *Client) call(httpc *http.Client, method string, payload any) (json.RawMessage, error) {
	b, _ := json.Marshal(payload)
	resp, err := httpc.Post(c.apiURL+"/"+method, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()
	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !api.OK {
		return nil, &APIError{Method: method, Code: api.ErrorCode, Description: api.Description}
	}
	return api.Result, nil
}

// raw returns the platform's response body untouched, ok or not. Used by the
// admin passthrough endpoints.
func (c *Client) raw(method string, payload any) (json.RawMessage, error) {
	var resp *http.Response
	var err error
	if payload == nil {
		resp, err = c.httpc.Get(c.apiURL + "/" + method)
	} else {
		b, _ := json.Marshal(payload)
		resp, err = c.httpc.Post(c.apiURL+"/"+method, "application/json", bytes.NewReader(b))
	}
	if err != nil {
		return nil, fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("telegram %s: read response: %w", method, err)
	}
	return body, nil
}

func (c *Client) SendMessage(chatID int64, text string) error {
	_, err := c.call(c.httpc, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	return err
}

// SendInvoice delivers a Stars invoice straight into a chat.
func (c *Client) SendInvoice(chatID int64, product string, amount, buyerID int64) error {
	req := NewInvoiceRequest(product, amount, buyerID)
	body := req.body()
	body["chat_id"] = chatID
	_, err := c.call(c.httpc, "sendInvoice", body)
	return err
}

// CreateInvoiceLink returns a payable t.me link for the given product.
func (c *Client) CreateInvoiceLink(product string, amount, buyerID int64) (string, error) {
	req := NewInvoiceRequest(product, amount, buyerID)
	result, err := c.call(c.httpc, "createInvoiceLink", req.body())
	if err != nil {
		return "", err
	}
	var link string
	if err := json.Unmarshal(result, &link); err != nil {
		return "", fmt.Errorf("telegram createInvoiceLink: bad result: %w", err)
	}
	return link, nil
}

// AnswerPreCheckoutQuery approves or rejects a pending payment. No retry on
// failure: a late second attempt is worse than silence, the platform fails
// the payment on its own once the window closes.
func (c *Client) AnswerPreCheckoutQuery(queryID string, ok bool, reason string) error {
	payload := map[string]any{
		"pre_checkout_query_id": queryID,
		"ok":                    ok,
	}
	if !ok && reason != "" {
		payload["error_message"] = reason
	}
	_, err := c.call(c.quickc, "answerPreCheckoutQuery", payload)
	return err
}

func (c *Client) SetWebhook(publicURL string) (json.RawMessage, error) {
	return c.raw("setWebhook", map[string]any{
		"url":             publicURL,
		"allowed_updates": []string{"message", "pre_checkout_query"},
		"max_connections": 40,
	})
}

func (c *Client) GetWebhookInfo() (json.RawMessage, error) {
	return c.raw("getWebhookInfo", nil)
}
