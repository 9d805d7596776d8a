// Package taskfile reads dotbot-style task files: a list of tasks, each a
// mapping from directive name to that directive's data.
//
//	- defaults:
//	    apt-get: {}
//	- apt-get:
//	    - vim
//	    - [htop, some/ppa]
//
// YAML and JSON keep the order directives are written in. TOML files hold a
// [[tasks]] array; since TOML tables are unordered, "defaults" runs first and
// the remaining directives run in name order.
package taskfile

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotapt/pkg/errors"
)

// DefaultsDirective is handled by the host rather than a plugin
const DefaultsDirective = "defaults"

// Format is the serialization of a task file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Entry is one directive invocation inside a task
type Entry struct {
	Directive string
	Data      interface{}
}

// Task is an ordered group of directive invocations
type Task struct {
	Entries []Entry
}

// File is a parsed task file
type File struct {
	Path   string
	Format Format
	Tasks  []Task
}

// DetectFormat picks the format from the file extension; unknown
// extensions are read as YAML
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads and parses the task file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTaskfileRead, "cannot read task file %s", path).
			WithDetail("path", path)
	}

	format := DetectFormat(path)
	tasks, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Format: format, Tasks: tasks}, nil
}

// Parse decodes task-file content in the given format
func Parse(data []byte, format Format) ([]Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	switch format {
	case FormatTOML:
		return parseTOML(data)
	default:
		// JSON is read by the YAML decoder
		return parseYAML(data)
	}
}

func parseYAML(data []byte) ([]Task, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrTaskfileParse, "invalid task file")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrTaskfileParse, "task file must be a list of tasks").
			WithDetail("line", root.Line)
	}

	tasks := make([]Task, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, errors.Newf(errors.ErrTaskfileParse, "task %d is not a mapping", i+1).
				WithDetail("line", item.Line)
		}

		task := Task{}
		for j := 0; j+1 < len(item.Content); j += 2 {
			key, value := item.Content[j], item.Content[j+1]

			var v interface{}
			if err := value.Decode(&v); err != nil {
				return nil, errors.Wrapf(err, errors.ErrTaskfileParse, "task %d: cannot decode %s", i+1, key.Value)
			}
			task.Entries = append(task.Entries, Entry{Directive: key.Value, Data: v})
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

type tomlFile struct {
	Tasks []map[string]interface{} `toml:"tasks"`
}

func parseTOML(data []byte) ([]Task, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrTaskfileParse, "invalid task file")
	}

	tasks := make([]Task, 0, len(f.Tasks))
	for _, m := range f.Tasks {
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Slice(names, func(a, b int) bool {
			if names[a] == DefaultsDirective || names[b] == DefaultsDirective {
				return names[a] == DefaultsDirective && names[b] != DefaultsDirective
			}
			return names[a] < names[b]
		})

		task := Task{}
		for _, name := range names {
			task.Entries = append(task.Entries, Entry{Directive: name, Data: m[name]})
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
