package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fuchsia-tools/gendefs/internal/sdk"
)

var listSDKDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the parts declared in the SDK manifest",
	Long:  `List prints the type and manifest path of every part in the SDK index.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSDKDir, "sdk", "", "SDK base directory (default: the sdk directory next to the executable)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sdkDir := listSDKDir
	if sdkDir == "" {
		var err error
		sdkDir, err = defaultSDKDir()
		if err != nil {
			return err
		}
	}

	idx, err := sdk.LoadIndex(sdkDir)
	if err != nil {
		return err
	}
	for _, part := range idx.Parts {
		fmt.Printf("%-20s %s\n", part.Type, part.Meta)
	}
	return nil
}
