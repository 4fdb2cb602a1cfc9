package router

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/mod/semver"

	"github.com/law-makers/clikit/pkg/console"
)

// Version is one labelled version line printed by the version flag. An empty
// Label means the tool's own version.
type Version struct {
	Label string
	Value string
	Err   error
}

// VersionSource retrieves the installed version(s) of the tool. Lookups are
// best effort: failures are reported per line in Version.Err.
type VersionSource interface {
	Versions(ctx context.Context) []Version
}

// CommandRunner runs a shell command. *console.Presenter implements it.
type CommandRunner interface {
	ExecuteCommand(ctx context.Context, command string) console.CommandResult
}

// NormalizeVersion trims v and drops a leading "v" when the rest is a valid
// semantic version. The version is otherwise shown as installed: build
// metadata and missing minor or patch parts are kept as they are.
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	bare := strings.TrimPrefix(v, "v")
	if semver.IsValid("v" + bare) {
		return bare
	}
	return v
}

// StaticVersion is a version known at build time.
type StaticVersion string

// Versions implements VersionSource.
func (s StaticVersion) Versions(context.Context) []Version {
	if strings.TrimSpace(string(s)) == "" {
		return []Version{{Err: errors.New("version not set")}}
	}
	return []Version{{Value: NormalizeVersion(string(s))}}
}

// GlobalListing scrapes the version of Package from the output of a global
// package listing command such as "npm list -g --depth=0".
type GlobalListing struct {
	Command string
	Package string
	Runner  CommandRunner
	Label   string
}

// Versions implements VersionSource.
func (g GlobalListing) Versions(ctx context.Context) []Version {
	value, err := g.lookup(ctx)
	return []Version{{Label: g.Label, Value: value, Err: err}}
}

func (g GlobalListing) lookup(ctx context.Context) (string, error) {
	if g.Runner == nil {
		return "", errors.New("no command runner configured")
	}
	if g.Command == "" || g.Package == "" {
		return "", errors.New("listing command and package are required")
	}

	res := g.Runner.ExecuteCommand(ctx, g.Command)
	// Listing tools often exit non-zero on unrelated warnings, so output wins.
	if strings.TrimSpace(res.Output) == "" {
		if res.Failed() {
			return "", fmt.Errorf("%s: %s", g.Command, strings.TrimSpace(res.Error))
		}
		return "", fmt.Errorf("%s produced no output", g.Command)
	}

	return scrapeVersion(res.Output, g.Package)
}

// scrapeVersion finds "<pkg>@<version>" in a listing.
func scrapeVersion(listing, pkg string) (string, error) {
	pattern := regexp.MustCompile(`(?m)(?:^|\s)` + regexp.QuoteMeta(pkg) + `@(\S+)`)
	m := pattern.FindStringSubmatch(listing)
	if m == nil {
		return "", fmt.Errorf("package %s not found in listing", pkg)
	}
	return NormalizeVersion(m[1]), nil
}

// LocalDescriptor reads the version from a package descriptor file installed
// next to the tool and, when Global is set, also reports the global version.
// Lines are labelled "local" and "global".
type LocalDescriptor struct {
	Path   string
	Global VersionSource
}

// Versions implements VersionSource.
func (l LocalDescriptor) Versions(ctx context.Context) []Version {
	local := Version{Label: "local"}
	local.Value, local.Err = ReadDescriptorVersion(l.Path)

	out := []Version{local}
	if l.Global != nil {
		for _, v := range l.Global.Versions(ctx) {
			v.Label = "global"
			out = append(out, v)
		}
	}
	return out
}

type descriptor struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ReadDescriptorVersion returns the "version" field of a JSON or YAML
// package descriptor.
func ReadDescriptorVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read descriptor: %w", err)
	}

	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return "", fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	if strings.TrimSpace(d.Version) == "" {
		return "", fmt.Errorf("descriptor %s has no version", path)
	}

	return NormalizeVersion(d.Version), nil
}
