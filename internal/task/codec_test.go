package task

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeNilCollection(t *testing.T) {
	data, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("encoded nil = %s, want []", data)
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("len = %d, want 0", len(tasks))
	}
}

func TestEncodeUsesStorageFieldNames(t *testing.T) {
	created := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	data, err := EncodeTasks([]Task{{
		ID:        7,
		Text:      "Buy milk",
		Priority:  PriorityLow,
		CreatedAt: created,
	}})
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}

	for _, field := range []string{`"id":7`, `"text":"Buy milk"`, `"completed":false`, `"priority":"low"`, `"createdAt":"2026-01-02T15:04:05Z"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("encoded blob missing %s: %s", field, data)
		}
	}
}

func TestDecodeRejectsInvalidBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"empty", ""},
		{"null", "null"},
		{"object", `{}`},
		{"string id", `[{"id":"1","text":"x","completed":false,"priority":"low","createdAt":"2026-01-02T15:04:05Z"}]`},
		{"unknown priority", `[{"id":1,"text":"x","completed":false,"priority":"critical","createdAt":"2026-01-02T15:04:05Z"}]`},
		{"non-string timestamp", `[{"id":1,"text":"x","completed":false,"priority":"low","createdAt":5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTasks([]byte(tt.blob)); err == nil {
				t.Error("DecodeTasks accepted an invalid blob")
			}
		})
	}
}
