package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshpart",
	Short: "Partition unstructured simplex meshes for parallel computation",
	Long: `meshpart assigns each element of an unstructured simplex mesh
(triangles or tetrahedra) to one of N partitions by partitioning the
element adjacency graph through an external backend such as METIS,
then reports the resulting balance and cut ratio.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
