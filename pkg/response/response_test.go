package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chatbot-nlp-service/pkg/response"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.OK(c, gin.H{"response": "hi"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected success message, got %q", resp.Message)
	}
}

func TestBadRequest(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.BadRequest(c, errors.New("message is malformed"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Message != "message is malformed" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestTooManyRequests(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.TooManyRequests(c)
	})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
