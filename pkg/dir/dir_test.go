// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package dir_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/dir"
	"github.com/ladybug-tools/ladybug-go/pkg/testutil"
)

func TestLayerFromDir(t *testing.T) {
	t.Parallel()
	tmpdir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpdir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpdir, "a.txt"), []byte("a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpdir, "sub", "b.txt"), []byte("b\n"), 0o644))

	clamp := time.Unix(1600000000, 0)
	layer, err := dir.LayerFromDir(tmpdir, &dir.Prefix{
		DirName: "opt/data",
		Ownership: dir.Ownership{
			UID:   1000,
			UName: "ladybugbot",
			GID:   1000,
			GName: "ladybugbot",
		},
	}, nil, clamp)
	require.NoError(t, err)

	listing, err := testutil.DumpLayerListing(layer)
	require.NoError(t, err)
	assert.Contains(t, listing, "opt/data/a.txt")
	assert.Contains(t, listing, "opt/data/sub/b.txt")
	// the prefix directories themselves are entries too
	assert.Contains(t, listing, " opt\n")
	assert.Contains(t, listing, " opt/data\n")
}

func TestLayerFromDirChown(t *testing.T) {
	t.Parallel()
	tmpdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpdir, "a.txt"), []byte("a\n"), 0o644))

	chown := &dir.Ownership{UID: 1000, UName: "ladybugbot", GID: 1000, GName: "ladybugbot"}
	layer, err := dir.LayerFromDir(tmpdir, nil, chown, time.Unix(1600000000, 0))
	require.NoError(t, err)

	listing, err := testutil.DumpLayerListing(layer)
	require.NoError(t, err)
	assert.Contains(t, listing, `1000="ladybugbot"`)
}

func TestLayerFromDirReproducible(t *testing.T) {
	t.Parallel()
	tmpdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpdir, "a.txt"), []byte("a\n"), 0o644))

	clamp := time.Unix(1600000000, 0)
	layer1, err := dir.LayerFromDir(tmpdir, nil, nil, clamp)
	require.NoError(t, err)
	layer2, err := dir.LayerFromDir(tmpdir, nil, nil, clamp)
	require.NoError(t, err)
	testutil.AssertEqualLayers(t, layer1, layer2)
}
