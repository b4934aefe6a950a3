package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ladybug-tools/ladybug-go/pkg/release"
)

func init() {
	var flags struct {
		SourceDir     string
		BaseImage     string
		BaseImageFile string
		ImageRepo     string
		LayerFile     string
		SaveLayerFile string
		DryRun        bool
	}
	cmd := &cobra.Command{
		Use:   "release [flags] VERSION",
		Short: "Publish a versioned release to PyPI and Docker Hub",
		Long: "Build the source/wheel distribution and upload it to PyPI, then " +
			"assemble the release container image and push it tagged both with " +
			"VERSION and with 'latest'." +
			"\n\n" +
			"Credentials are read from the PYPI_USERNAME, PYPI_PASSWORD, " +
			"DOCKER_USERNAME, and DOCKER_PASSWORD environment variables.  When a " +
			"username is set but its password is not, and stdin is a terminal, the " +
			"password is prompted for.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), release.ErrNoVersion.Error())
				os.Exit(1)
			}

			rel := &release.Release{
				Version:       args[0],
				SourceDir:     flags.SourceDir,
				BaseImage:     flags.BaseImage,
				BaseImageFile: flags.BaseImageFile,
				ImageRepo:     flags.ImageRepo,
				LayerFile:     flags.LayerFile,
				SaveLayerFile: flags.SaveLayerFile,
				PyPI:          release.CredentialsFromEnv("PYPI"),
				Docker:        release.CredentialsFromEnv("DOCKER"),
				DryRun:        flags.DryRun,
			}
			if !rel.DryRun {
				if err := promptPassword("PyPI", &rel.PyPI); err != nil {
					return err
				}
				if err := promptPassword("Docker", &rel.Docker); err != nil {
					return err
				}
			}
			return rel.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&flags.SourceDir, "source-dir", ".",
		"Build the distribution and image layer from `DIR`")
	cmd.Flags().StringVar(&flags.BaseImage, "base", release.DefaultBaseImage,
		"Use `IMAGE_REF` as the base of the release image")
	cmd.Flags().StringVar(&flags.BaseImageFile, "base-file", "",
		"Use local tarball `IN_IMAGEFILE` as the base instead of pulling --base")
	cmd.Flags().StringVar(&flags.ImageRepo, "image-repo", release.DefaultImageRepo,
		"Push the release image to `REPO`")
	cmd.Flags().StringVar(&flags.LayerFile, "layer-file", "",
		"Use local tarball `IN_LAYERFILE` as the package layer instead of building "+
			"it from --source-dir")
	cmd.Flags().StringVar(&flags.SaveLayerFile, "save-layer", "",
		"Also write the built package layer tarball to `OUT_LAYERFILE`, for reuse "+
			"with --layer-file")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Perform the builds but skip the upload and the push")

	argparser.AddCommand(cmd)
}

// promptPassword fills in a missing password from the terminal.
func promptPassword(service string, creds *release.Credentials) error {
	if creds.Username == "" || creds.Password != "" {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("no %s password supplied for user %q and stdin is not a terminal",
			service, creds.Username)
	}
	fmt.Fprintf(os.Stderr, "%s password for %s: ", service, creds.Username)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	creds.Password = string(password)
	return nil
}
