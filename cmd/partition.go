package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notargets/meshpart/mesh"
	"github.com/notargets/meshpart/partitions"
)

// partitionCmd partitions a mesh and reports balance and cut metrics
var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Partition a simplex mesh and report quality metrics",
	Long: `Partition a simplex mesh and report quality metrics.

The mesh is either read from an SU2 file (--meshFile) or generated
from a built-in unit mesh (--generate square|cube) refined --splits
times. Partitioning parameters come from flags or a YAML config file.`,
	RunE: runPartition,
}

func init() {
	rootCmd.AddCommand(partitionCmd)

	partitionCmd.Flags().StringP("meshFile", "F", "", "SU2 mesh file to partition")
	partitionCmd.Flags().StringP("generate", "g", "", "generate a built-in test mesh: square or cube")
	partitionCmd.Flags().IntP("splits", "s", 0, "number of uniform refinements of the generated mesh")
	partitionCmd.Flags().IntP("nparts", "n", 2, "number of partitions")
	partitionCmd.Flags().StringP("backend", "b", string(partitions.Metis), "partition backend")
	partitionCmd.Flags().StringP("config", "I", "", "YAML file with partitioning parameters")
}

func runPartition(cmd *cobra.Command, args []string) error {
	meshFile, _ := cmd.Flags().GetString("meshFile")
	generate, _ := cmd.Flags().GetString("generate")
	splits, _ := cmd.Flags().GetInt("splits")
	nParts, _ := cmd.Flags().GetInt("nparts")
	backend, _ := cmd.Flags().GetString("backend")
	configFile, _ := cmd.Flags().GetString("config")

	m, err := loadMesh(meshFile, generate, splits)
	if err != nil {
		return err
	}
	fmt.Printf("Mesh: %d %s elements, %d vertices\n",
		m.NumElements(), m.ElementType, m.NumVertices())

	cfg := partitions.DefaultConfig(nParts)
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return err
		}
		if err := cfg.Parse(data); err != nil {
			return fmt.Errorf("bad config file %s: %w", configFile, err)
		}
	}
	cfg.Print()

	if err := partitions.PartitionWithConfig(m, partitions.Backend(backend), cfg); err != nil {
		return err
	}

	layout, err := partitions.BuildLayout(m)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", layout.Statistics())

	m.ComputeFaceToElems()
	quality, err := partitions.PartitionQuality(m)
	if err != nil {
		return err
	}
	fmt.Printf("cut ratio: %.4f (%d faces total)\n", quality, m.NumFaces())

	return printExchange(layout, m)
}

// loadMesh reads or generates the input mesh
func loadMesh(meshFile, generate string, splits int) (*mesh.SimplexMesh, error) {
	if meshFile != "" {
		return mesh.ReadSU2(meshFile)
	}

	var m *mesh.SimplexMesh
	switch generate {
	case "square":
		m = mesh.UnitSquareMesh()
	case "cube":
		m = mesh.UnitCubeMesh()
	case "":
		return nil, fmt.Errorf("either --meshFile or --generate is required")
	default:
		return nil, fmt.Errorf("unknown test mesh %q, want square or cube", generate)
	}

	for i := 0; i < splits; i++ {
		m = m.Split()
	}
	return m, nil
}

// printExchange reports the per-partition-pair shared face counts
func printExchange(layout *partitions.Layout, m *mesh.SimplexMesh) error {
	counts, err := layout.ExchangeCounts(m)
	if err != nil {
		return err
	}
	if err := partitions.VerifyExchange(counts); err != nil {
		return err
	}

	pairs := make([][2]int, 0, len(counts))
	for pair := range counts {
		if pair[0] < pair[1] {
			pairs = append(pairs, pair)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	for _, pair := range pairs {
		fmt.Printf("  partition %d <-> %d: %d faces\n", pair[0], pair[1], counts[pair])
	}
	return nil
}
