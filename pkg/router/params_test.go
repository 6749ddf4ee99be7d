package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	type archiveParams struct {
		Year  int     `param:"year"`
		Slug  string  `param:"slug"`
		Draft bool    `param:"draft"`
		Score float64 `param:"score"`
		Skip  string
	}

	params := map[string]string{
		"year":  "2026",
		"slug":  "hello-world",
		"draft": "true",
		"score": "4.5",
		"Skip":  "ignored",
	}

	var got archiveParams
	if err := ParseParams(params, &got); err != nil {
		t.Fatal(err)
	}

	want := archiveParams{Year: 2026, Slug: "hello-world", Draft: true, Score: 4.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsed params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParamsCatchAllSlice(t *testing.T) {
	type docsParams struct {
		Rest []string `param:"rest"`
	}

	var got docsParams
	if err := ParseParams(map[string]string{"rest": "guide/install/linux"}, &got); err != nil {
		t.Fatal(err)
	}
	want := []string{"guide", "install", "linux"}
	if diff := cmp.Diff(want, got.Rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParamsMissingParamLeavesZero(t *testing.T) {
	type p struct {
		Page int `param:"page"`
	}
	var got p
	if err := ParseParams(map[string]string{}, &got); err != nil {
		t.Fatal(err)
	}
	if got.Page != 0 {
		t.Errorf("Page = %d, want zero for missing param", got.Page)
	}
}

func TestParseParamsInvalidValue(t *testing.T) {
	type p struct {
		Page int `param:"page"`
	}
	var got p
	if err := ParseParams(map[string]string{"page": "not-a-number"}, &got); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestParseParamsRejectsNonPointer(t *testing.T) {
	type p struct {
		Name string `param:"name"`
	}
	if err := ParseParams(map[string]string{"name": "x"}, p{}); err == nil {
		t.Error("expected error for non-pointer target")
	}
	var n int
	if err := ParseParams(map[string]string{"name": "x"}, &n); err == nil {
		t.Error("expected error for pointer to non-struct")
	}
}
