package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
)

// AssetKind identifies the family an asset belongs to
type AssetKind string

const (
	// AssetKindNative is the chain-native unit of value
	AssetKindNative AssetKind = "native"
	// AssetKindToken is a token identified by an external contract reference
	AssetKindToken AssetKind = "token"
)

// MaxAssetReferenceLength bounds token references accepted from callers
const MaxAssetReferenceLength = 128

// Asset identifies what kind of value a lock holds in custody. It is a
// comparable value type, so assets can be compared with == and used as map keys.
type Asset struct {
	Kind      AssetKind
	Reference string
}

// NativeAsset returns the native asset
func NativeAsset() Asset {
	return Asset{Kind: AssetKindNative}
}

// TokenAsset returns a token asset with the given contract reference
func TokenAsset(reference string) Asset {
	return Asset{Kind: AssetKindToken, Reference: reference}
}

// IsNative reports whether the asset is the native unit of value
func (a Asset) IsNative() bool {
	return a.Kind == AssetKindNative
}

// Validate checks that the asset is well formed
func (a Asset) Validate() error {
	switch a.Kind {
	case AssetKindNative:
		if a.Reference != "" {
			return errs.ErrInvalidAsset
		}
		return nil
	case AssetKindToken:
		if a.Reference == "" || len(a.Reference) > MaxAssetReferenceLength {
			return errs.ErrInvalidAsset
		}
		if strings.ContainsAny(a.Reference, " \t\n") {
			return errs.ErrInvalidAsset
		}
		return nil
	default:
		return errs.ErrInvalidAsset
	}
}

// String renders the canonical wire form: "native" or "token:<reference>"
func (a Asset) String() string {
	if a.Kind == AssetKindToken {
		return string(AssetKindToken) + ":" + a.Reference
	}
	return string(a.Kind)
}

// ParseAsset parses the canonical wire form produced by String
func ParseAsset(s string) (Asset, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == string(AssetKindNative) {
		return NativeAsset(), nil
	}
	if ref, ok := strings.CutPrefix(trimmed, string(AssetKindToken)+":"); ok {
		asset := TokenAsset(ref)
		if err := asset.Validate(); err != nil {
			return Asset{}, err
		}
		return asset, nil
	}
	return Asset{}, errs.ErrInvalidAsset
}
