package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetFlow_CreateAndCheckStatus(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create a monthly budget of $200 for dining
	rec := app.request("POST", "/api/v1/budgets", `{"category":"Food & Dining","amount":200}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating budget, got %d: %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	budgetID := budget["id"].(string)
	if budget["period"] != "monthly" {
		t.Errorf("expected default period monthly, got %v", budget["period"])
	}

	// Step 2: Status before any spending
	rec = app.request("GET", fmt.Sprintf("/api/v1/budgets/%s/status", budgetID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	status := parseJSON(t, rec)["status"].(map[string]interface{})
	if status["spent"].(float64) != 0 {
		t.Errorf("expected 0 spent, got %v", status["spent"])
	}
	if status["remaining"].(float64) != 200 {
		t.Errorf("expected 200 remaining, got %v", status["remaining"])
	}
	if status["status"] != "good" {
		t.Errorf("expected good, got %v", status["status"])
	}

	// Step 3: Spend $170 (85%)
	for _, amount := range []string{"80", "50", "40"} {
		rec = app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"description":"Dinner","amount":%s,"category":"Food & Dining"}`, amount))
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}
	// Spending in another category does not count
	rec = app.request("POST", "/api/v1/expenses", `{"description":"Bus","amount":12,"category":"Transportation"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/budgets/%s/status", budgetID), "")
	status = parseJSON(t, rec)["status"].(map[string]interface{})
	if status["spent"].(float64) != 170 {
		t.Errorf("expected 170 spent, got %v", status["spent"])
	}
	if status["percentage"].(float64) != 85 {
		t.Errorf("expected 85%%, got %v", status["percentage"])
	}
	if status["status"] != "warning" {
		t.Errorf("expected warning, got %v", status["status"])
	}

	// Step 4: Go over budget (120%)
	rec = app.request("POST", "/api/v1/expenses", `{"description":"Party","amount":70,"category":"Food & Dining"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/budgets/%s/status", budgetID), "")
	status = parseJSON(t, rec)["status"].(map[string]interface{})
	if status["status"] != "over" {
		t.Errorf("expected over, got %v", status["status"])
	}
	if status["percentage"].(float64) != 100 {
		t.Errorf("expected percentage clamped to 100, got %v", status["percentage"])
	}
	if status["raw_percentage"].(float64) != 120 {
		t.Errorf("expected raw percentage 120, got %v", status["raw_percentage"])
	}
	if status["remaining"].(float64) != 0 {
		t.Errorf("expected remaining clamped to 0, got %v", status["remaining"])
	}

	// Step 5: Overview counts the over-budget entry
	rec = app.request("GET", "/api/v1/budgets/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	overview := parseJSON(t, rec)
	if overview["over_budget"].(float64) != 1 {
		t.Errorf("expected 1 over budget, got %v", overview["over_budget"])
	}
	if overview["total_spent"].(float64) != 240 {
		t.Errorf("expected total spent 240, got %v", overview["total_spent"])
	}
}

func TestBudgetFlow_UpdateAndDelete(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/budgets", `{"category":"Shopping","amount":100,"period":"weekly"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budgetID := parseJSON(t, rec)["budget"].(map[string]interface{})["id"].(string)

	// Partial update keeps the other fields
	rec = app.request("PUT", "/api/v1/budgets/"+budgetID, `{"amount":150.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["budget"].(map[string]interface{})
	if updated["amount"].(float64) != 150.5 {
		t.Errorf("expected amount 150.5, got %v", updated["amount"])
	}
	if updated["period"] != "weekly" || updated["category"] != "Shopping" {
		t.Errorf("expected untouched fields, got %v", updated)
	}

	// Unknown budgets are a silent no-op
	rec = app.request("PUT", "/api/v1/budgets/missing", `{"amount":10}`)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for unknown budget, got %d", rec.Code)
	}

	rec = app.request("PUT", "/api/v1/budgets/missing", `{}`)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for empty patch on unknown budget, got %d", rec.Code)
	}

	rec = app.request("PUT", "/api/v1/budgets/"+budgetID, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty patch, got %d", rec.Code)
	}

	rec = app.request("PUT", "/api/v1/budgets/"+budgetID, `{"category":"Groceries"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", rec.Code)
	}

	rec = app.request("DELETE", "/api/v1/budgets/"+budgetID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/budgets/"+budgetID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected idempotent delete, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/budgets/"+budgetID+"/status", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/budgets", "")
	if got := parseJSON(t, rec)["total_items"].(float64); got != 0 {
		t.Errorf("expected no budgets, got %v", got)
	}
}

func TestBudgetFlow_RejectsNegativeAmount(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/budgets", `{"category":"Travel","amount":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// A zero budget is allowed
	rec = app.request("POST", "/api/v1/budgets", `{"category":"Travel","amount":0}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
