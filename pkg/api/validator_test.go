package api

import "testing"

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload Validator
		wantErr bool
	}{
		{"Look default", LookPayload{}, false},
		{"Look negative", LookPayload{Radius: -1}, true},
		{"Target next", TargetPayload{Mode: "next"}, false},
		{"Target case-insensitive", TargetPayload{Mode: "Nearest"}, false},
		{"Target empty", TargetPayload{}, true},
		{"Target garbage", TargetPayload{Mode: "random"}, true},
		{"Validate current", ValidatePayload{}, false},
		{"Validate negative range", ValidatePayload{Range: -2}, true},
		{"Zap at current target", ZapPayload{WandID: "w"}, false},
		{"Zap direction", ZapPayload{WandID: "w", Direction: "ne"}, false},
		{"Zap point", ZapPayload{WandID: "w", Target: &PosPayload{X: 1, Y: 2}}, false},
		{"Zap without wand", ZapPayload{Direction: "N"}, true},
		{"Zap bad direction", ZapPayload{WandID: "w", Direction: "UP"}, true},
		{"Zap both shapes", ZapPayload{WandID: "w", Direction: "N", Target: &PosPayload{}}, true},
		{"Zap negative range", ZapPayload{WandID: "w", Direction: "N", Range: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
