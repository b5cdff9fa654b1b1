package services

import (
	"encoding/json"
	"testing"
)

func TestOptionalDistinguishesOmittedNullAndValue(t *testing.T) {
	var payload struct {
		Omitted Optional[string]  `json:"omitted"`
		Cleared Optional[string]  `json:"cleared"`
		Given   Optional[float64] `json:"given"`
	}
	if err := json.Unmarshal([]byte(`{"cleared": null, "given": 72.5}`), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	if payload.Omitted.Set {
		t.Fatal("expected omitted field to stay unset")
	}
	if !payload.Cleared.Set || !payload.Cleared.Null {
		t.Fatalf("expected cleared field to be set and null, got %+v", payload.Cleared)
	}
	if !payload.Given.present() || payload.Given.Value != 72.5 {
		t.Fatalf("expected given value 72.5, got %+v", payload.Given)
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var payload struct {
		OnDiet Optional[bool] `json:"onDiet"`
	}
	if err := json.Unmarshal([]byte(`{"onDiet": "yes"}`), &payload); err == nil {
		t.Fatal("expected type mismatch to fail")
	}
}
