package router

import (
	"context"
	"fmt"
)

// builtins returns the flags every tool supports.
func (r *Router) builtins() *Registry {
	help := Definition{
		Name:        "help",
		Description: "Show the supported flags",
		Handler:     HandlerFunc(r.help),
	}
	version := Definition{
		Name:        "version",
		Description: "Show the installed version",
		Handler:     HandlerFunc(r.printVersion),
	}

	return NewRegistry().
		Alias(help, "-h", "--help").
		Alias(version, "-v", "--version")
}

func (r *Router) help(_ context.Context, _ ...string) error {
	r.OutputSupportedUsage()
	return nil
}

func (r *Router) printVersion(ctx context.Context, _ ...string) error {
	if r.version == nil {
		r.presenter.Info(fmt.Sprintf("Version information is not available for %s.", r.toolName))
		return nil
	}

	for _, v := range r.version.Versions(ctx) {
		label := r.toolName + " version"
		if v.Label != "" {
			label = v.Label + " version"
		}
		if v.Err != nil {
			r.presenter.Info(fmt.Sprintf("Unable to determine %s: %v", label, v.Err))
			continue
		}
		r.presenter.Success(label + ": " + v.Value)
	}
	return nil
}
