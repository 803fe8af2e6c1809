package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/ui/style"
)

// globalLabel is printed in the module column of global helpers.
const globalLabel = "(global)"

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	TargetOptions
	// Module restricts the listing to one module.
	Module string
	Out    io.Writer
}

// Inspect prints the resolved entries of a previously written artifact.
func (a *App) Inspect(_ context.Context, opts InspectOptions) error {
	layout, err := a.resolve(opts.TargetOptions)
	if err != nil {
		return err
	}

	table, err := a.store.Load(layout.ArtifactPath())
	if err != nil {
		return err
	}

	for entry := range table.Entries() {
		if opts.Module != "" && entry.Module != opts.Module {
			continue
		}
		module := entry.Module
		if module == domain.GlobalModule {
			module = globalLabel
		}
		_, err := fmt.Fprintln(opts.Out,
			style.KindColumn.Render(entry.Kind.String())+
				style.ModuleColumn.Render(module)+
				style.NameColumn.Render(entry.Name)+
				style.PathColumn.Render(entry.Path),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
