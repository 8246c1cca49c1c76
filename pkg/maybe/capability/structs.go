package capability

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// structField looks up a field of a struct by name. Field names follow
// mapstructure: the `mapstructure` tag when present, the Go field name
// otherwise. An exact match wins over a case-insensitive one; among
// case-insensitive matches the first name in sorted order wins.
func structField(recv any, key any) (any, error) {
	name, ok := key.(string)
	if !ok {
		name = fmt.Sprint(key)
	}

	fields := make(map[string]interface{})
	if err := mapstructure.Decode(recv, &fields); err != nil {
		return nil, fmt.Errorf("%s: %w", IndexName, err)
	}

	if v, ok := fields[name]; ok {
		return v, nil
	}
	names := maps.Keys(fields)
	slices.Sort(names)
	for _, k := range names {
		if strings.EqualFold(k, name) {
			return fields[k], nil
		}
	}
	return nil, nil
}
