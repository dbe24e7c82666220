// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// id_fn.go — actor identity schemes.

package builder

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDFn generates an actor identity from its zero-based index.
// It must be pure: the same idx always yields the same identity, and
// distinct indices yield distinct identities.
type IDFn[I comparable] func(idx int) I

// DecimalID returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// IntID returns idx unchanged.
func IntID(idx int) int {
	return idx
}

// ExcelColumnID returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnID(%d)", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// UUIDScheme returns an IDFn deriving a version 5 UUID from namespace and
// the decimal index, so identities are stable across runs.
func UUIDScheme(namespace uuid.UUID) IDFn[uuid.UUID] {
	return func(idx int) uuid.UUID {
		return uuid.NewSHA1(namespace, []byte(strconv.Itoa(idx)))
	}
}
