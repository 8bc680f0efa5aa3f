package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SendCode(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:        srv.URL,
		ServiceID:      "svc_1",
		CodeTemplateID: "tpl_code",
		PublicKey:      "pk_1",
		AppName:        "InventoryPro",
	})

	if err := client.SendCode(context.Background(), "alice@example.com", "123456", 5); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if got.ServiceID != "svc_1" || got.TemplateID != "tpl_code" || got.UserID != "pk_1" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	params := got.TemplateParams
	if params["to_email"] != "alice@example.com" || params["code"] != "123456" {
		t.Fatalf("unexpected params: %v", params)
	}
	if params["exp_minutes"] != float64(5) || params["app_name"] != "InventoryPro" {
		t.Fatalf("unexpected params: %v", params)
	}
}

func TestClient_SendAlert(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:         srv.URL,
		AlertTemplateID: "tpl_alert",
		AlertsEmail:     "ops@example.com",
	})

	if err := client.SendAlert(context.Background(), "Low stock: Nails", "restock soon"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if got.TemplateID != "tpl_alert" {
		t.Fatalf("unexpected template: %s", got.TemplateID)
	}
	if got.TemplateParams["to_email"] != "ops@example.com" || got.TemplateParams["subject"] != "Low stock: Nails" {
		t.Fatalf("unexpected params: %v", got.TemplateParams)
	}
}

func TestClient_Send_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	err := client.SendCode(context.Background(), "alice@example.com", "123456", 5)
	if err == nil {
		t.Fatalf("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "status 422") || !strings.Contains(err.Error(), "bad template") {
		t.Fatalf("error should carry status and detail: %v", err)
	}
}
