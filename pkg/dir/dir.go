// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dir builds a container image layer from a directory tree, such
// as a package source checkout being laid into a release image.
package dir

import (
	"archive/tar"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	ociv1 "github.com/google/go-containerregistry/pkg/v1"
	ociv1tarball "github.com/google/go-containerregistry/pkg/v1/tarball"
)

// Prefix places the directory contents under DirName inside the layer,
// creating the leading directories.
type Prefix struct {
	DirName string

	Mode int

	Ownership
}

// Ownership is the uid/gid metadata stamped on tar entries.
type Ownership struct {
	UID   int
	UName string

	GID   int
	GName string
}

// LayerFromDir tars up dirname as a layer.  Timestamps later than
// clampTime are clamped to it so that rebuilding from an unchanged tree
// yields a byte-identical layer.  When chown is non-nil it overrides the
// on-disk ownership of every entry.
func LayerFromDir(
	dirname string,
	prefix *Prefix,
	chown *Ownership,
	clampTime time.Time,
	opts ...ociv1tarball.LayerOption,
) (ociv1.Layer, error) {
	type seenEntry struct {
		Name string
		Info fs.FileInfo
	}

	var byteWriter bytes.Buffer
	tarWriter := tar.NewWriter(&byteWriter)

	var seen []seenEntry

	if prefix != nil {
		if prefix.Mode == 0 {
			prefix.Mode = 0o755
		}
		var dirs []string
		for dir := prefix.DirName; dir != "."; dir = path.Dir(dir) {
			dirs = append(dirs, dir)
		}
		for i := len(dirs) - 1; i >= 0; i-- {
			if err := tarWriter.WriteHeader(&tar.Header{
				Name:     dirs[i],
				Typeflag: tar.TypeDir,
				ModTime:  clampTime,

				Mode:  int64(prefix.Mode),
				Uid:   prefix.UID,
				Uname: prefix.UName,
				Gid:   prefix.GID,
				Gname: prefix.GName,
			}); err != nil {
				return nil, err
			}
		}
	}

	err := filepath.Walk(dirname, func(filename string, info fs.FileInfo, e error) error {
		if e != nil {
			return e
		}
		name, err := filepath.Rel(dirname, filename)
		if err != nil {
			return err
		}
		name = filepath.ToSlash(name)
		if name == "." {
			return nil
		}
		if prefix != nil {
			name = path.Join(prefix.DirName, name)
		}
		defer func() {
			seen = append(seen, seenEntry{
				Name: name,
				Info: info,
			})
		}()

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = name
		// same inode twice means a hardlink
		for _, entry := range seen {
			if os.SameFile(entry.Info, info) {
				header.Typeflag = tar.TypeLink
				header.Linkname = entry.Name
				break
			}
		}
		if header.Typeflag == tar.TypeSymlink {
			header.Linkname, err = os.Readlink(filename)
			if err != nil {
				return err
			}
		}
		if header.ModTime.After(clampTime) {
			header.ModTime = clampTime
		}
		if header.AccessTime.After(clampTime) {
			header.AccessTime = clampTime
		}
		if header.ChangeTime.After(clampTime) {
			header.ChangeTime = clampTime
		}
		if chown != nil {
			if chown.UID >= 0 {
				header.Uid = chown.UID
			}
			if chown.UName != "" {
				header.Uname = chown.UName
			}
			if chown.GID >= 0 {
				header.Gid = chown.GID
			}
			if chown.GName != "" {
				header.Gname = chown.GName
			}
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}
		if header.Typeflag == tar.TypeReg {
			reader, err := os.Open(filename)
			if err != nil {
				return err
			}
			if _, err := io.Copy(tarWriter, reader); err != nil {
				_ = reader.Close()
				return err
			}
			if err := reader.Close(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := tarWriter.Close(); err != nil {
		return nil, err
	}

	byteSlice := byteWriter.Bytes()
	return ociv1tarball.LayerFromOpener(func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(byteSlice)), nil
	}, opts...)
}
