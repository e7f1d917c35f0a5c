package descriptor

import (
	"strings"
	"testing"
)

func TestValidateAcceptsBuiltDescriptors(t *testing.T) {
	tests := []Descriptor{
		NewMaterial("Wood", "default"),
		NewTexture("brick", TextureOptions{}),
		NewTexture("brick", TextureOptions{Filter: "linear", Address: "clamp", Rectangular: true, Mipmapped: true}),
	}

	for _, d := range tests {
		result, err := Validate(d)
		if err != nil {
			t.Fatalf("Validate(%s) error: %v", d.Name, err)
		}
		if !result.Valid {
			t.Errorf("Validate(%s %s) invalid: %v", d.Kind, d.Name, result)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		keyword string
	}{
		{
			name: "unknown key",
			d: Descriptor{Kind: KindTexture, Name: "brick", SchemaVersion: 1, Attributes: []Attribute{
				{"version", "1"}, {"shininess", "3"}, {"image", "brick"},
			}},
			keyword: "additionalProperties",
		},
		{
			name: "filter out of enum",
			d: Descriptor{Kind: KindTexture, Name: "brick", SchemaVersion: 1, Attributes: []Attribute{
				{"version", "1"}, {"filter", "bilinear"}, {"image", "brick"},
			}},
			keyword: "enum",
		},
		{
			name: "missing image",
			d: Descriptor{Kind: KindTexture, Name: "brick", SchemaVersion: 1, Attributes: []Attribute{
				{"version", "1"},
			}},
			keyword: "required",
		},
		{
			name:    "empty program",
			d:       NewMaterial("Wood", ""),
			keyword: "minLength",
		},
		{
			name: "schema version mismatch",
			d: Descriptor{Kind: KindMaterial, Name: "Wood", SchemaVersion: 3, Attributes: []Attribute{
				{"version", "4"}, {"program", "default"},
			}},
			keyword: "version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.d)
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("issues %+v do not include keyword %q", result.Issues, tt.keyword)
			}
			if result.Error() == "" {
				t.Error("Error() should describe the issues")
			}
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	_, err := Validate(Descriptor{Kind: "shader", Name: "x"})
	if err == nil || !strings.Contains(err.Error(), "unknown descriptor kind") {
		t.Errorf("err = %v", err)
	}
}
