package finderwiring

import (
	"strings"

	"github.com/goliatone/go-gamefinder/components/findgames"
	"github.com/goliatone/go-gamefinder/pkg/finder"
)

// EndpointURL joins origin with the component mount path under basePath.
func EndpointURL(origin, basePath string, fns ...findgames.OptionFn) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	return origin + findgames.MountPath(basePath, fns...)
}

// EndpointOption points a finder controller at the find games component
// served from origin under basePath.
func EndpointOption(origin, basePath string, fns ...findgames.OptionFn) finder.OptionFn {
	return finder.WithEndpoint(EndpointURL(origin, basePath, fns...))
}
