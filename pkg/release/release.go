// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package release publishes a versioned ladybug release: a source/wheel
// distribution uploaded to PyPI, and a container image pushed to Docker
// Hub.
package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"
	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	ociv1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/empty"
	"github.com/google/go-containerregistry/pkg/v1/mutate"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/ladybug-tools/ladybug-go/pkg/dir"
	"github.com/ladybug-tools/ladybug-go/pkg/fsutil"
	"github.com/ladybug-tools/ladybug-go/pkg/reproducible"
)

// ErrNoVersion is returned when a release is attempted without a version.
//
//nolint:stylecheck // the message is a user-facing diagnostic, verbatim
var ErrNoVersion = errors.New("A release version must be supplied")

const (
	// DefaultImageRepo is where release images are pushed.
	DefaultImageRepo = "ladybugtools/ladybug"
	// DefaultBaseImage is the base that the package layer is appended to.
	DefaultBaseImage = "python:3.7-slim"

	imageUser = "ladybugbot"
	imageHome = "/home/ladybugbot"
)

// Credentials authenticate to an external service.
type Credentials struct {
	Username string
	Password string
}

// CredentialsFromEnv reads PREFIX_USERNAME and PREFIX_PASSWORD.
func CredentialsFromEnv(prefix string) Credentials {
	return Credentials{
		Username: os.Getenv(prefix + "_USERNAME"),
		Password: os.Getenv(prefix + "_PASSWORD"),
	}
}

func (c Credentials) authenticator() authn.Authenticator {
	if c.Username == "" {
		return authn.Anonymous
	}
	return &authn.Basic{Username: c.Username, Password: c.Password}
}

// Release is one versioned publish of the package in SourceDir.
type Release struct {
	Version   string
	SourceDir string

	// BaseImageFile is a local image tarball to use as the base; when
	// empty BaseImage is pulled from its registry instead.
	BaseImageFile string
	BaseImage     string
	ImageRepo     string

	// LayerFile is a local layer tarball to use as the package layer;
	// when empty the layer is built from SourceDir.
	LayerFile string
	// SaveLayerFile, when set, receives the built package layer tarball
	// so that a later run can reuse it via LayerFile.
	SaveLayerFile string

	PyPI   Credentials
	Docker Credentials

	// DryRun performs the builds but skips the upload and the push.
	DryRun bool
}

// Run performs the release steps in order, stopping at the first failure.
func (r *Release) Run(ctx context.Context) error {
	if r.Version == "" {
		return ErrNoVersion
	}
	if r.ImageRepo == "" {
		r.ImageRepo = DefaultImageRepo
	}
	if r.BaseImage == "" && r.BaseImageFile == "" {
		r.BaseImage = DefaultBaseImage
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"build distribution", r.buildDistribution},
		{"upload distribution", r.uploadDistribution},
		{"push image", r.pushImage},
	}
	for _, step := range steps {
		dlog.Infof(ctx, "release %s: %s", r.Version, step.name)
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("release %s: %s: %w", r.Version, step.name, err)
		}
	}
	return nil
}

func (r *Release) buildDistribution(ctx context.Context) error {
	cmd := dexec.CommandContext(ctx, "python3", "setup.py", "sdist", "bdist_wheel")
	cmd.Dir = r.SourceDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *Release) uploadDistribution(ctx context.Context) error {
	dists, err := filepath.Glob(filepath.Join(r.SourceDir, "dist", "*"))
	if err != nil {
		return err
	}
	if len(dists) == 0 {
		return fmt.Errorf("no distribution files found under %s",
			filepath.Join(r.SourceDir, "dist"))
	}
	if r.DryRun {
		dlog.Infof(ctx, "dry run: skipping upload of %d distribution files", len(dists))
		return nil
	}

	cmd := dexec.CommandContext(ctx, "twine", append([]string{"upload"}, dists...)...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		"TWINE_USERNAME="+r.PyPI.Username,
		"TWINE_PASSWORD="+r.PyPI.Password)
	return cmd.Run()
}

// BuildImage assembles the release image: the package source laid into a
// layer under the image user's home directory, on top of the base image.
func (r *Release) BuildImage(ctx context.Context) (ociv1.Image, error) {
	base, err := r.baseImage(ctx)
	if err != nil {
		return nil, err
	}

	layer, err := r.packageLayer()
	if err != nil {
		return nil, err
	}
	img, err := mutate.AppendLayers(base, layer)
	if err != nil {
		return nil, err
	}

	cfgFile, err := img.ConfigFile()
	if err != nil {
		return nil, err
	}
	cfg := cfgFile.Config
	cfg.User = imageUser
	cfg.WorkingDir = imageHome
	return mutate.Config(img, cfg)
}

func (r *Release) baseImage(ctx context.Context) (ociv1.Image, error) {
	if r.BaseImageFile != "" {
		return fsutil.OpenImage(r.BaseImageFile)
	}
	if r.BaseImage == "" {
		return empty.Image, nil
	}
	ref, err := name.ParseReference(r.BaseImage)
	if err != nil {
		return nil, err
	}
	return remote.Image(ref,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(authn.DefaultKeychain))
}

func (r *Release) packageLayer() (ociv1.Layer, error) {
	if r.LayerFile != "" {
		return fsutil.OpenLayer(r.LayerFile)
	}
	layer, err := PackageLayer(r.SourceDir)
	if err != nil {
		return nil, err
	}
	if r.SaveLayerFile != "" {
		file, err := os.Create(r.SaveLayerFile)
		if err != nil {
			return nil, err
		}
		if err := fsutil.WriteLayer(layer, file); err != nil {
			_ = file.Close()
			return nil, err
		}
		if err := file.Close(); err != nil {
			return nil, err
		}
	}
	return layer, nil
}

// PackageLayer builds the layer holding the package source under
// /home/ladybugbot/ladybug, owned by the image user, with timestamps
// clamped for reproducibility.
func PackageLayer(sourceDir string) (ociv1.Layer, error) {
	ownership := dir.Ownership{
		UID:   1000,
		UName: imageUser,
		GID:   1000,
		GName: imageUser,
	}
	return dir.LayerFromDir(sourceDir, &dir.Prefix{
		DirName:   "home/ladybugbot/ladybug",
		Ownership: ownership,
	}, &ownership, reproducible.Now())
}

func (r *Release) pushImage(ctx context.Context) error {
	img, err := r.BuildImage(ctx)
	if err != nil {
		return err
	}

	// the image carries both the version tag and latest
	for _, tag := range []string{r.Version, "latest"} {
		ref, err := name.NewTag(r.ImageRepo + ":" + tag)
		if err != nil {
			return err
		}
		if r.DryRun {
			dlog.Infof(ctx, "dry run: skipping push of %s", ref)
			continue
		}
		dlog.Infof(ctx, "pushing %s", ref)
		if err := remote.Write(ref, img,
			remote.WithContext(ctx),
			remote.WithAuth(r.Docker.authenticator())); err != nil {
			return err
		}
	}
	return nil
}
