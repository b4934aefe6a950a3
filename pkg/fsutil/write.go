// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package fsutil

import (
	"io"

	ociv1 "github.com/google/go-containerregistry/pkg/v1"
)

// WriteLayer writes the uncompressed layer tarball to dst.
func WriteLayer(layer ociv1.Layer, dst io.Writer) (err error) {
	layerReader, err := layer.Uncompressed()
	if err != nil {
		return err
	}
	defer func() {
		if _err := layerReader.Close(); _err != nil && err == nil {
			err = _err
		}
	}()
	if _, err := io.Copy(dst, layerReader); err != nil {
		return err
	}
	return nil
}
