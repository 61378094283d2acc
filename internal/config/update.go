package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteDefault writes a commented default config to path.
func WriteDefault(path string) error {
	return Write(path, DefaultConfig())
}

// Write renders cfg as commented YAML to path, creating parent directories.
// It overwrites any existing file; callers confirm first.
func Write(path string, cfg *Config) error {
	data, err := Render(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// RenderDefault returns the default config as commented YAML.
func RenderDefault() ([]byte, error) {
	return Render(DefaultConfig())
}

// Render returns cfg as commented YAML. Durations are written as strings
// so the file stays readable and loads back through Load.
func Render(cfg *Config) ([]byte, error) {
	root := mappingNode()
	addScalar(root, "version", "!!int", strconv.Itoa(cfg.Version), "Config schema version.")
	addScalar(root, "interval", "!!str", cfg.Interval.String(), "How often the dashboard samples.")
	addScalar(root, "timeout", "!!str", cfg.Timeout.String(), "Limit for each external command (0 disables).")
	addScalar(root, "cpu_interval", "!!str", cfg.CPUInterval.String(), "Gap between the two CPU tick snapshots.")
	addScalar(root, "history", "!!int", strconv.Itoa(cfg.History), "Samples kept per chart.")
	addScalar(root, "host", "!!str", cfg.Host, "Run probes over SSH on this host. Empty samples the local machine.")
	addScalar(root, "strict_host_key_checking", "!!bool", strconv.FormatBool(cfg.StrictHostKeyChecking), "")

	root.Content = append(root.Content,
		keyNode("temperature", "Board temperature probe. Output looks like temp=48.3'C."),
		commandNode(cfg.Temperature),
		keyNode("tasks", "BOINC task list probe."),
		commandNode(cfg.Tasks),
	)

	logNode := mappingNode()
	addScalar(logNode, "file", "!!str", toHomeRelativePath(cfg.Log.File), "")
	addScalar(logNode, "level", "!!str", cfg.Log.Level, "")
	addScalar(logNode, "max_size_mb", "!!int", strconv.Itoa(cfg.Log.MaxSizeMB), "")
	addScalar(logNode, "max_backups", "!!int", strconv.Itoa(cfg.Log.MaxBackups), "")
	addScalar(logNode, "max_age_days", "!!int", strconv.Itoa(cfg.Log.MaxAgeDays), "")
	root.Content = append(root.Content, keyNode("log", "Rotated log file. The dashboard never logs to the terminal."), logNode)

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	return []byte(buf.String()), nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func keyNode(key, comment string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key, HeadComment: comment}
}

// addScalar appends key: value to a mapping. Values that would not read
// back as tag are quoted by the encoder.
func addScalar(m *yaml.Node, key, tag, value, comment string) {
	m.Content = append(m.Content,
		keyNode(key, comment),
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
	)
}

func commandNode(cmd CommandConfig) *yaml.Node {
	n := mappingNode()
	addScalar(n, "command", "!!str", cmd.Command, "")

	args := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, a := range cmd.Args {
		args.Content = append(args.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a})
	}
	n.Content = append(n.Content, keyNode("args", ""), args)
	return n
}

// toHomeRelativePath rewrites a path under the home directory as ~/...
func toHomeRelativePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || path == "" {
		return path
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
