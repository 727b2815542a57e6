package filestation

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func newResponse(t *testing.T, doc string) *Response {
	t.Helper()
	resp := &Response{}
	if err := resp.parse(context.Background(), []byte(doc)); err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	return resp
}

// TestResponse tests various methods of the Response struct
func TestResponse(t *testing.T) {
	resp := newResponse(t, `{"success":true,"data":{"name":"test","value":42,"nested":{"key":"value"},"array":[1,2,3]}}`)

	if !resp.Success {
		t.Errorf("Success = false, want true")
	}

	value, err := resp.Value()
	if err != nil {
		t.Errorf("Value failed: %s", err)
	}
	if m, ok := value.(map[string]any); !ok || m["name"] != "test" {
		t.Errorf("Value returned %v", value)
	}

	var target struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	if err := resp.ApplyContext(context.Background(), &target); err != nil {
		t.Errorf("ApplyContext failed: %s", err)
	}
	if target.Name != "test" || target.Value != 42 {
		t.Errorf("ApplyContext result = {%s, %d}, want {test, 42}", target.Name, target.Value)
	}

	if string(resp.Raw()) == "" {
		t.Errorf("Raw returned empty document")
	}
}

// TestResponsePathAccess tests the Get and GetString methods for path access
func TestResponsePathAccess(t *testing.T) {
	resp := newResponse(t, `{"success":true,"data":{
		"level1": {
			"level2": {"string": "nested value", "number": 42, "bool": true},
			"sibling": "sibling value"
		},
		"empty": null
	}}`)

	stringTests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"data.level1.level2.string", "nested value", false},
		{"data.level1.sibling", "sibling value", false},
		{"data.level1.level2.number", "", true}, // Not a string
		{"data.level1.level2.bool", "", true},   // Not a string
		{"data.nonexistent", "", true},          // Path doesn't exist
		{"data.empty", "", true},                // Null value
	}

	for _, tt := range stringTests {
		got, err := resp.GetString(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("GetString(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("GetString(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if _, err := resp.GetString("data.nonexistent"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("GetString(missing) error = %v, want fs.ErrNotExist", err)
	}

	n, err := GetAs[int64](resp, "data.level1.level2.number")
	if err != nil || n != 42 {
		t.Errorf("GetAs[int64] = %v, %v, want 42, nil", n, err)
	}
	if _, err := GetAs[int64](resp, "data.missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("GetAs(missing) error = %v, want fs.ErrNotExist", err)
	}
	if n, err := resp.GetInt("data.level1.level2.number"); err != nil || n != 42 {
		t.Errorf("GetInt = %v, %v, want 42, nil", n, err)
	}
}

func TestResponseNoData(t *testing.T) {
	resp := newResponse(t, `{"success":true}`)

	v, err := resp.Value()
	if err != nil || v != nil {
		t.Errorf("Value() = %v, %v, want nil, nil", v, err)
	}
	var target map[string]any
	if err := resp.Apply(&target); err != nil || target != nil {
		t.Errorf("Apply() = %v, %v, want nil map", target, err)
	}
}
