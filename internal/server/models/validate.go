package models

import (
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
)

// ValidateAssetContent checks the mutable content fields against the
// record schema. Checks run field by field in a fixed order (name, size,
// description, tags) and the first violation wins, so callers always see
// the error kind of the earliest invalid field.
func ValidateAssetContent(name string, sizeBytes int64, description string, tags []string) error {
	if len(name) == 0 || len(name) > AssetNameMaxLen {
		return fmt.Errorf("%w: name must be 1-%d bytes", common.ErrorInvalidParameters, AssetNameMaxLen)
	}
	if sizeBytes <= 0 || sizeBytes >= AssetSizeBytesMax {
		return fmt.Errorf("%w: size_bytes must be within (0, %d)", common.ErrorCapacityExceeded, AssetSizeBytesMax)
	}
	if len(description) == 0 || len(description) > AssetDescriptionMaxLen {
		return fmt.Errorf("%w: description must be 1-%d bytes", common.ErrorInvalidParameters, AssetDescriptionMaxLen)
	}
	if len(tags) == 0 || len(tags) > AssetTagsMaxCount {
		return fmt.Errorf("%w: tag list must have 1-%d entries", common.ErrorFormatValidation, AssetTagsMaxCount)
	}
	for _, tag := range tags {
		if len(tag) == 0 || len(tag) > AssetTagMaxLen {
			return fmt.Errorf("%w: each tag must be 1-%d bytes", common.ErrorFormatValidation, AssetTagMaxLen)
		}
	}
	return nil
}

// ValidateContent applies ValidateAssetContent to the record's own fields.
func (a *Asset) ValidateContent() error {
	return ValidateAssetContent(a.Name, a.SizeBytes, a.Description, a.Tags)
}
