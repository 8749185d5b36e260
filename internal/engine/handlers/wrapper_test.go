package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cognitive-targeting/pkg/api"
)

func TestWithPayload(t *testing.T) {
	var got api.TargetPayload
	h := WithPayload(func(ctx Context, p api.TargetPayload) (Result, error) {
		got = p
		return Result{Msg: "ok"}, nil
	})

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"Valid", `{"mode":"next"}`, ""},
		{"Broken JSON", `{"mode":`, "invalid payload format"},
		{"Fails validation", `{"mode":"sideways"}`, "validation failed"},
		{"Empty payload is zero value", ``, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h(Context{}, json.RawMessage(tt.raw))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Msg != "ok" || got.Mode != "next" {
					t.Errorf("handler got %+v, result %+v", got, res)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestWithEmptyPayload(t *testing.T) {
	sentinel := errors.New("boom")
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		return Result{}, sentinel
	})
	if _, err := h(Context{}, json.RawMessage(`garbage`)); !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want sentinel", err)
	}
}

func TestResult_WithEvent(t *testing.T) {
	res, err := Result{Msg: "x"}.WithEvent(api.PosView{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Event) != `{"x":1,"y":2}` || res.Msg != "x" {
		t.Errorf("res = %+v (%s)", res, res.Event)
	}
}
