package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/avasiljevs/assetledger/internal/common"
)

func validContent() (string, int64, string, []string) {
	return "doc", 100, "x", []string{"a"}
}

func TestValidateAssetContent_Valid(t *testing.T) {
	name, size, desc, tags := validContent()
	if err := ValidateAssetContent(name, size, desc, tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAssetContent_NameBoundaries(t *testing.T) {
	_, size, desc, tags := validContent()

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"empty name", "", common.ErrorInvalidParameters},
		{"name at 64 bytes", strings.Repeat("n", 64), nil},
		{"name at 65 bytes", strings.Repeat("n", 65), common.ErrorInvalidParameters},
		{"name at 1 byte", "n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAssetContent(tc.value, size, desc, tags)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateAssetContent_SizeBoundaries(t *testing.T) {
	name, _, desc, tags := validContent()

	tests := []struct {
		name    string
		value   int64
		wantErr error
	}{
		{"zero size", 0, common.ErrorCapacityExceeded},
		{"size one", 1, nil},
		{"size just below limit", 999_999_999, nil},
		{"size at limit", 1_000_000_000, common.ErrorCapacityExceeded},
		{"negative size", -1, common.ErrorCapacityExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAssetContent(name, tc.value, desc, tags)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateAssetContent_DescriptionBoundaries(t *testing.T) {
	name, size, _, tags := validContent()

	if err := ValidateAssetContent(name, size, strings.Repeat("d", 128), tags); err != nil {
		t.Fatalf("128-byte description must pass, got %v", err)
	}
	err := ValidateAssetContent(name, size, strings.Repeat("d", 129), tags)
	if !errors.Is(err, common.ErrorInvalidParameters) {
		t.Fatalf("want ErrorInvalidParameters, got %v", err)
	}
	err = ValidateAssetContent(name, size, "", tags)
	if !errors.Is(err, common.ErrorInvalidParameters) {
		t.Fatalf("want ErrorInvalidParameters for empty description, got %v", err)
	}
}

func TestValidateAssetContent_TagBoundaries(t *testing.T) {
	name, size, desc, _ := validContent()

	tenTags := make([]string, 10)
	for i := range tenTags {
		tenTags[i] = "t"
	}
	if err := ValidateAssetContent(name, size, desc, tenTags); err != nil {
		t.Fatalf("10 tags must pass, got %v", err)
	}

	err := ValidateAssetContent(name, size, desc, nil)
	if !errors.Is(err, common.ErrorFormatValidation) {
		t.Fatalf("want ErrorFormatValidation for empty tag list, got %v", err)
	}

	elevenTags := append(tenTags, "t")
	err = ValidateAssetContent(name, size, desc, elevenTags)
	if !errors.Is(err, common.ErrorFormatValidation) {
		t.Fatalf("want ErrorFormatValidation for 11 tags, got %v", err)
	}

	err = ValidateAssetContent(name, size, desc, []string{""})
	if !errors.Is(err, common.ErrorFormatValidation) {
		t.Fatalf("want ErrorFormatValidation for empty tag, got %v", err)
	}

	if err := ValidateAssetContent(name, size, desc, []string{strings.Repeat("t", 32)}); err != nil {
		t.Fatalf("32-byte tag must pass, got %v", err)
	}
	err = ValidateAssetContent(name, size, desc, []string{strings.Repeat("t", 33)})
	if !errors.Is(err, common.ErrorFormatValidation) {
		t.Fatalf("want ErrorFormatValidation for 33-byte tag, got %v", err)
	}
}

// Field checks run in a fixed order; when several fields are invalid the
// earliest one decides the error kind.
func TestValidateAssetContent_FirstViolationWins(t *testing.T) {
	err := ValidateAssetContent("", 0, "", nil)
	if !errors.Is(err, common.ErrorInvalidParameters) {
		t.Fatalf("want name error first, got %v", err)
	}

	err = ValidateAssetContent("ok", 0, "", nil)
	if !errors.Is(err, common.ErrorCapacityExceeded) {
		t.Fatalf("want size error before description, got %v", err)
	}
}
