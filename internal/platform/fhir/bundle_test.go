package fhir

import (
	"encoding/json"
	"testing"
)

func TestNewSearchBundle(t *testing.T) {
	entries := []PatientEntry{
		{ResourceType: "Patient", ID: "1", Name: []HumanName{{Text: "Alice Johnson"}}, Age: 55, Condition: []string{"diabetes"}},
		{ResourceType: "Patient", ID: "7", Name: []HumanName{{Text: "Grace Kim"}}, Age: 50, Condition: []string{"covid", "diabetes"}},
	}

	bundle := NewSearchBundle(entries)

	if bundle.ResourceType != "Bundle" {
		t.Errorf("expected resourceType Bundle, got %s", bundle.ResourceType)
	}
	if bundle.Type != "searchset" {
		t.Errorf("expected type searchset, got %s", bundle.Type)
	}
	if bundle.Total != 2 {
		t.Errorf("expected total 2, got %d", bundle.Total)
	}
	if len(bundle.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(bundle.Entry))
	}
	if bundle.Entry[1].ID != "7" {
		t.Errorf("expected entry order preserved, got id %s", bundle.Entry[1].ID)
	}
}

func TestNewSearchBundle_Empty(t *testing.T) {
	bundle := NewSearchBundle(nil)

	if bundle.Total != 0 {
		t.Errorf("expected total 0, got %d", bundle.Total)
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"resourceType":"Bundle","type":"searchset","total":0,"entry":[]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestPatientEntry_JSON(t *testing.T) {
	entry := PatientEntry{
		ResourceType: "Patient",
		ID:           "5",
		Name:         []HumanName{{Text: "Ethan Lee"}},
		Age:          70,
		Condition:    []string{"copd", "hypertension"},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"resourceType":"Patient","id":"5","name":[{"text":"Ethan Lee"}],"age":70,"condition":["copd","hypertension"]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
