package internal

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/fuchsia-tools/gendefs/internal/gen"
	"github.com/fuchsia-tools/gendefs/internal/gn"
	"github.com/fuchsia-tools/gendefs/internal/sdk"
)

var (
	genSDKDir  string
	genOut     string
	genDepfile string
	genVerbose bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate BUILD.gn from the SDK manifests",
	Long: `Gen converts every part listed in the SDK manifest into a GN build
target and rewrites the generated BUILD.gn file in a single pass.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genSDKDir, "sdk", "", "SDK base directory (default: the sdk directory next to the executable)")
	genCmd.Flags().StringVar(&genOut, "out", "", "Output file (default: <sdk>/BUILD.gn)")
	genCmd.Flags().StringVar(&genDepfile, "depfile", "", "Write a depfile listing the consumed manifests")
	genCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Dump each converted target to stderr")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	sdkDir := genSDKDir
	if sdkDir == "" {
		var err error
		sdkDir, err = defaultSDKDir()
		if err != nil {
			return err
		}
	}

	opts := gen.Options{
		SDKDir:      sdkDir,
		OutPath:     genOut,
		DepfilePath: genDepfile,
	}
	if genVerbose {
		opts.Converted = func(part sdk.Part, t *gn.Target) {
			fmt.Fprintf(os.Stderr, "%s:\n%s", part.Meta, spew.Sdump(t))
		}
	}

	if err := gen.Generate(opts); err != nil {
		return fmt.Errorf("failed to generate build defs: %w", err)
	}
	return nil
}
