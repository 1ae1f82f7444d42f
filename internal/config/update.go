package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/principal"
	"gopkg.in/yaml.v3"
)

// SetCanisterID records canisters.<name>.ids.<network> = id in the project
// file, creating intermediate keys as needed. It preserves the existing YAML
// structure and comments.
func SetCanisterID(configPath, name, network string, id principal.Principal) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind == 0 {
		// Empty file
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mappingNode()}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	canistersNode := ensureMapValue(docNode, "canisters")
	canisterNode := ensureMapValue(canistersNode, name)
	idsNode := ensureMapValue(canisterNode, "ids")

	if existing := findMapValue(idsNode, network); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = "!!str"
		existing.Value = id.String()
	} else {
		idsNode.Content = append(idsNode.Content, scalarNode(network), scalarNode(id.String()))
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findMapValue finds the value node for a key in a mapping node.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	// Mapping nodes have alternating key, value in Content
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// ensureMapValue returns the mapping under key, adding an empty one if the
// key is missing. A null value (`key:`) is turned into a mapping in place.
func ensureMapValue(node *yaml.Node, key string) *yaml.Node {
	if v := findMapValue(node, key); v != nil {
		if v.Kind != yaml.MappingNode {
			*v = *mappingNode()
		}
		return v
	}
	v := mappingNode()
	node.Content = append(node.Content, scalarNode(key), v)
	return v
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// InitProject writes a starter icp.yaml into dir. It refuses to overwrite
// an existing file unless force is set. Returns the written path.
func InitProject(dir string, force bool) (string, error) {
	path := filepath.Join(dir, mode.ProjectFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.New(errors.ErrConfig,
			"icp.yaml already exists in "+dir,
			"Use --force to overwrite it")
	}

	cfg := starterConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This is a bug - please report it")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return path, nil
}

// starterConfig is what `icp init` writes: the built-in networks spelled
// out so users can see and edit them.
func starterConfig() *Config {
	cfg := DefaultConfig()
	cfg.Environments = map[string]Environment{
		"staging": {Network: MainNetwork},
	}
	return cfg
}
