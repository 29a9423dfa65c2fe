package internal

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gendefs",
	Short: "gendefs generates GN build targets from Fuchsia SDK manifests",
	Long: `gendefs reads the JSON manifests shipped with a Fuchsia SDK drop and
writes a single BUILD.gn file declaring a build target for each SDK artifact.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// defaultSDKDir returns the sdk directory that ships next to the tool.
func defaultSDKDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "sdk"), nil
}
