package aptget

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotapt/pkg/errors"
)

// PackageSpec names a package and, optionally, the PPA to add before
// installing it
type PackageSpec struct {
	Name       string
	Repository string
}

// HasRepository reports whether a PPA must be registered first
func (p PackageSpec) HasRepository() bool {
	return p.Repository != ""
}

// ParseSpec converts one raw task-file entry into a PackageSpec.
//
// Accepted shapes are a scalar (the package name) and a list whose first
// element is the name and second, if present, the PPA identifier. Mappings,
// empty lists and empty names are rejected with ErrSpecMalformed.
func ParseSpec(raw interface{}) (PackageSpec, error) {
	switch v := raw.(type) {
	case map[string]interface{}, map[interface{}]interface{}:
		return PackageSpec{}, malformed(raw, "mapping entries are not supported")
	case []interface{}:
		return parseList(raw, v)
	case []string:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return parseList(raw, items)
	case nil:
		return PackageSpec{}, malformed(raw, "entry is empty")
	default:
		name := scalar(v)
		if name == "" {
			return PackageSpec{}, malformed(raw, "package name is empty")
		}
		return PackageSpec{Name: name}, nil
	}
}

func parseList(raw interface{}, items []interface{}) (PackageSpec, error) {
	if len(items) == 0 {
		return PackageSpec{}, malformed(raw, "list entry is empty")
	}
	spec := PackageSpec{Name: scalar(items[0])}
	if spec.Name == "" {
		return PackageSpec{}, malformed(raw, "package name is empty")
	}
	if len(items) > 1 {
		spec.Repository = scalar(items[1])
	}
	return spec, nil
}

// scalar renders a scalar entry as a trimmed string; nested structures and
// nil yield ""
func scalar(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case map[string]interface{}, map[interface{}]interface{}, []interface{}, []string:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

func malformed(raw interface{}, reason string) error {
	return errors.Newf(errors.ErrSpecMalformed, "incorrect format: %s", reason).
		WithDetail("entry", fmt.Sprintf("%v", raw))
}
