package partitions

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Objective selects what the backend minimizes across partition
// boundaries
type Objective string

const (
	ObjectiveCut Objective = "cut" // minimize cut edges
	ObjectiveVol Objective = "vol" // minimize communication volume
)

// Config holds partitioning parameters
type Config struct {
	NParts          int32     `yaml:"NParts"`
	ImbalanceFactor float32   `yaml:"ImbalanceFactor"` // e.g., 1.05 for 5% imbalance
	Objective       Objective `yaml:"Objective"`       // "cut" or "vol"
}

// DefaultConfig returns the default partitioning configuration for
// nParts partitions
func DefaultConfig(nParts int) *Config {
	return &Config{
		NParts:          int32(nParts),
		ImbalanceFactor: 1.05,
		Objective:       ObjectiveCut,
	}
}

// Parse fills the config from YAML data
func (c *Config) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	switch c.Objective {
	case "", ObjectiveCut, ObjectiveVol:
	default:
		return fmt.Errorf("unknown objective %q", c.Objective)
	}
	if c.Objective == "" {
		c.Objective = ObjectiveCut
	}
	if c.ImbalanceFactor == 0 {
		c.ImbalanceFactor = 1.05
	}
	return nil
}

// Print writes the configuration to stdout
func (c *Config) Print() {
	fmt.Printf("[%d]\t\t= NParts\n", c.NParts)
	fmt.Printf("%8.5f\t= ImbalanceFactor\n", c.ImbalanceFactor)
	fmt.Printf("[%s]\t\t= Objective\n", c.Objective)
}
