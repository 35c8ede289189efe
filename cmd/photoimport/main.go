package main

import (
	"os"

	"github.com/spf13/cobra"

	photoimport "github.com/user/photo-import/cmd/photoimport/lib"
	"github.com/user/photo-import/pkg"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photoimport <source-dir> <destination-dir>",
		Short: "Copy photos into a YYYY/MM/DD tree and tag them",
		Long: `photoimport - organize photos by capture date

Copies every photo directly inside <source-dir> to
<destination-dir>/YYYY/MM/DD/<filename>, using the EXIF DateTimeOriginal
tag. Photos without a readable date are skipped, files already present at
the destination are never overwritten, and the given metadata is written
into each new copy (requires exiftool).

Examples:
  photoimport ~/card/DCIM/100FUJI ~/Pictures
  photoimport -k holiday,beach -r "Jane Doe" -c "(c) Jane Doe" ./in ./library`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		Version:      version,
		RunE:         runImport,
	}

	flags := cmd.Flags()
	flags.StringP("keywords", "k", "", "List of comma separated keywords (tags) to add to XMP metadata")
	flags.StringP("credit", "r", "", "Name of photographer, agency, etc, to add to the metadata")
	flags.StringP("description", "d", "", "Description of the image to add to the XMP metadata")
	flags.StringP("copyright", "c", "", "Name of copyright holder of the image to add to the metadata")
	flags.StringP("location", "l", "", "The location of the image to add to the XMP metadata")
	flags.String("config", "", "Path to TOML config with default metadata (default: $XDG_CONFIG_HOME/photoimport/config.toml)")
	flags.String("exiftool", "", "Path to the exiftool binary (default: found on PATH)")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.Bool("no-color", false, "Disable colored output")

	cmd.SetVersionTemplate("photoimport {{.Version}}\n")
	return cmd
}

// buildOptions merges the config file defaults with the flags that were
// given explicitly. A fresh MetadataRequest is built on every call.
func buildOptions(cmd *cobra.Command, args []string) (photoimport.Options, error) {
	flags := cmd.Flags()

	// The default is resolved per run, not when the command is built.
	configPath := pkg.DefaultConfigPath()
	if flags.Changed("config") {
		configPath, _ = flags.GetString("config")
	}
	cfg, err := pkg.LoadConfig(configPath, flags.Changed("config"))
	if err != nil {
		return photoimport.Options{}, err
	}

	req := cfg.Request()
	if flags.Changed("keywords") {
		keywords, _ := flags.GetString("keywords")
		req.Keywords = pkg.ParseKeywords(keywords)
	}
	for name, field := range map[string]*string{
		"credit":      &req.Credit,
		"description": &req.Description,
		"copyright":   &req.Copyright,
		"location":    &req.Location,
	} {
		if flags.Changed(name) {
			*field, _ = flags.GetString(name)
		}
	}

	exiftoolPath := cfg.ExiftoolPath
	if flags.Changed("exiftool") {
		exiftoolPath, _ = flags.GetString("exiftool")
	}

	return photoimport.Options{
		SourceDir:    args[0],
		DestDir:      args[1],
		Request:      req,
		ExiftoolPath: exiftoolPath,
	}, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	out := cmd.OutOrStdout()
	return photoimport.RunImport(opts, photoimport.NewLogger(out, verbose, noColor), out)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
