package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medikart/medikart/internal/platform/auth"
)

func newTestHandler() (*Handler, *mockMedicineRepo, *echo.Echo) {
	meds := newMockMedicineRepo()
	svc := NewService(newMockOrderRepo(), meds, nil)
	h := NewHandler(svc)
	e := echo.New()
	return h, meds, e
}

// sessionContext builds an echo context carrying the given user id and
// role, the way the auth middleware would.
func sessionContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.UserRoleKey, role)
	req = req.WithContext(ctx)
	return e.NewContext(req, rec)
}

func TestHandler_PlaceOrder(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 25.50, 100)

	body := `{"shipping_address":"22 MG Road, Pune","contact_phone":"9876543210","items":[{"medicine_id":"` + para.ID.String() + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, uuid.New().String(), "user")

	if err := h.PlaceOrder(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var o Order
	json.Unmarshal(rec.Body.Bytes(), &o)
	if o.Status != StatusPending {
		t.Errorf("expected 'pending', got %s", o.Status)
	}
	if o.StatusColor != "yellow" {
		t.Errorf("expected status color 'yellow', got %s", o.StatusColor)
	}
}

func TestHandler_PlaceOrder_NoSession(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PlaceOrder(c)
	if err == nil {
		t.Fatal("expected error without a session")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_PlaceOrder_EmptyCart(t *testing.T) {
	h, _, e := newTestHandler()

	body := `{"shipping_address":"22 MG Road","contact_phone":"9876543210","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, uuid.New().String(), "user")

	if err := h.PlaceOrder(c); err == nil {
		t.Error("expected error for empty cart")
	}
}

func TestHandler_ListMyOrders(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	userID := uuid.New()
	h.svc.PlaceOrder(context.Background(), userID, validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))
	h.svc.PlaceOrder(context.Background(), uuid.New(), validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, userID.String(), "user")

	if err := h.ListMyOrders(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("expected only the caller's orders, got total %d", resp.Total)
	}
}

func TestHandler_GetOrder(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	userID := uuid.New()
	o, _ := h.svc.PlaceOrder(context.Background(), userID, validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, userID.String(), "user")
	c.SetParamNames("id")
	c.SetParamValues(o.ID.String())

	if err := h.GetOrder(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetOrder_Forbidden(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	o, _ := h.svc.PlaceOrder(context.Background(), uuid.New(), validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, uuid.New().String(), "user")
	c.SetParamNames("id")
	c.SetParamValues(o.ID.String())

	err := h.GetOrder(c)
	if err == nil {
		t.Fatal("expected error for another user's order")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, uuid.New().String(), "user")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetOrder(c)
	if err == nil {
		t.Fatal("expected error for unknown order")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_AdminListOrders(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	h.svc.PlaceOrder(context.Background(), uuid.New(), validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))
	h.svc.PlaceOrder(context.Background(), uuid.New(), validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AdminListOrders(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	owner := uuid.New()
	o, _ := h.svc.PlaceOrder(context.Background(), owner, validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	body := `{"status":"processing"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(o.ID.String())

	if err := h.UpdateOrderStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	fetched, _ := h.svc.GetOrder(context.Background(), o.ID, owner, "admin")
	if fetched.Status != StatusProcessing {
		t.Errorf("expected 'processing', got %s", fetched.Status)
	}
}

func TestHandler_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	h, meds, e := newTestHandler()
	para := seedMedicine(meds, "Paracetamol", 10, 5)
	o, _ := h.svc.PlaceOrder(context.Background(), uuid.New(), validRequest(PlaceOrderItem{MedicineID: para.ID, Quantity: 1}))

	body := `{"status":"teleported"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(o.ID.String())

	if err := h.UpdateOrderStatus(c); err == nil {
		t.Error("expected error for unknown status")
	}
}
