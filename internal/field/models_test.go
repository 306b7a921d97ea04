package field

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"", OrderAlphabetical, false},
		{"alpha", OrderAlphabetical, false},
		{"Alphabetical", OrderAlphabetical, false},
		{" custom ", OrderCustom, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrder(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefinition_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{
			name: "no default encodes null",
			def:  Definition{Label: "Color", Choices: []string{"Red"}, Order: OrderCustom},
			want: `{"label":"Color","required":false,"choices":["Red"],"order":"custom","default":null}`,
		},
		{
			name: "nil choices encode as empty array",
			def:  Definition{Label: "X", Required: true, Default: strPtr("a")},
			want: `{"label":"X","required":true,"choices":[],"order":"alpha","default":"a"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(&tt.def)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestDraftFromDefinition(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
		want Draft
	}{
		{
			name: "missing default appended to choices text",
			def: &Definition{
				Label:   "Color",
				Choices: []string{"Red", "Blue"},
				Order:   OrderCustom,
				Default: strPtr("Green"),
			},
			want: Draft{
				Label:        "Color",
				DefaultValue: "Green",
				ChoicesText:  "Red\nBlue\nGreen",
				Order:        OrderCustom,
			},
		},
		{
			name: "present default not duplicated",
			def: &Definition{
				Label:    "Size",
				Required: true,
				Choices:  []string{"S", "M"},
				Default:  strPtr("M"),
			},
			want: Draft{
				Label:        "Size",
				Required:     true,
				DefaultValue: "M",
				ChoicesText:  "S\nM",
				Order:        OrderAlphabetical,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DraftFromDefinition(tt.def)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DraftFromDefinition() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
