// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Array.Fprint].
func (a *Array[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := a.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the elements in logical order as string,
// just a wrapper for [Array.Fprint]. If Fprint returns an error,
// String panics.
func (a *Array[V]) String() string {
	w := new(strings.Builder)
	if err := a.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the elements in logical order to w, formatted with
// their default format like a printed slice:
//
//	[e0 e1 e2]
//
// If w is nil, Fprint panics.
func (a *Array[V]) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	for i, val := range a.All() {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%v", val); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "]"); err != nil {
		return err
	}

	return nil
}
