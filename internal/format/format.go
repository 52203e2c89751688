// SPDX-License-Identifier: MPL-2.0

package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Size renders a byte count with IEC units (KiB, MiB, ...).
func Size(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// SizeSI renders a byte count with SI units (kB, MB, ...).
func SizeSI(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}

// SizeAligned renders a byte count right-aligned in a field of the given
// width, for table columns.
func SizeAligned(n int64, width int) string {
	return fmt.Sprintf("%*s", width, Size(n))
}

// Count renders an integer with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Flatten collapses arbitrarily nested slices and maps into a flat list of
// leaf values, depth-first. Map entries are visited in sorted key order so
// the result is deterministic. Scalars flatten to a single-element list.
func Flatten(v any) []any {
	var out []any
	flattenInto(&out, v)
	return out
}

func flattenInto(out *[]any, v any) {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			flattenInto(out, item)
		}
	case map[string]any:
		keys := maps.Keys(val)
		slices.Sort(keys)
		for _, k := range keys {
			flattenInto(out, val[k])
		}
	default:
		*out = append(*out, v)
	}
}

// MapAssoc builds an identity map from keys, mirroring the common pattern of
// turning a list into a set-like lookup table. Duplicate keys collapse.
func MapAssoc(keys []string) map[string]string {
	return MapAssocWith(keys, func(k string) string { return k })
}

// MapAssocWith builds a map from keys where each value is derived by fn.
func MapAssocWith(keys []string, fn func(string) string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = fn(k)
	}
	return m
}
