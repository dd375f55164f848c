// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"encoding/json"
)

// MarshalJSON implements the [json.Marshaler] interface. The sequence
// is marshaled as a plain JSON array in logical order, the trie layout
// is representation and does not round-trip.
func (a *Array[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToSlice())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface. The
// receiver is replaced wholesale by a sequence built from the JSON
// array in data, sequences derived from the previous state are
// unaffected.
func (a *Array[V]) UnmarshalJSON(data []byte) error {
	var vals []V
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}

	*a = *FromSlice(vals)
	return nil
}
