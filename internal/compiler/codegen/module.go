// Package codegen synthesizes one Elm module per custom element and drives
// generation for a whole manifest.
package codegen

import (
	"fmt"
	"path/filepath"

	"github.com/stencil-elm/elmproxy/internal/compiler/binding"
	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
	strutil "github.com/stencil-elm/elmproxy/internal/util/strings"
)

// Module is the generated source for one component
type Module struct {
	// Tag is the custom element tag name
	Tag string
	// Name is the Elm module name, e.g. Components.MyButton
	Name string
	// Path is the file the module is written to
	Path string
	// Source is the complete module text
	Source string
	// Items is the number of bound properties and events
	Items int
	// Diagnostics lists the properties and events that were skipped
	Diagnostics errors.ErrorList
}

// ModuleName returns the Elm module name for a tag
func ModuleName(prefix, tagName string) string {
	return prefix + "." + strutil.PascalCase(tagName)
}

// ModulePath returns the file a tag's module is written to
func ModulePath(outputDir, tagName string) string {
	return filepath.Join(outputDir, strutil.PascalCase(tagName)+".elm")
}

type moduleData struct {
	Name         string
	Exposing     []string
	Declarations []string
}

type viewData struct {
	Tag       string
	Signature []string
	Arguments []string
	Bindings  []string
	Children  string
}

type propsData struct {
	HasEvents bool
	Fields    []string
}

// GenerateModule synthesizes the Elm module for one component. Unsupported
// properties and events are skipped and reported in Module.Diagnostics; the
// error return is reserved for failures that must abort generation.
func GenerateModule(cmp metadata.Component, opts Options) (*Module, error) {
	items, diags, err := componentItems(cmp, opts)
	if err != nil {
		return nil, err
	}

	declarations := make([]string, 0, 3)
	if len(items) > 1 {
		props, err := render(tmplProps, propsData{
			HasEvents: hasEvents(items),
			Fields:    mapItems(items, binding.Item.FieldAnnotation),
		})
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, props)
	}

	view, err := render(tmplView, buildView(cmp, items))
	if err != nil {
		return nil, err
	}
	declarations = append(declarations, view)

	var shared []string
	for _, item := range items {
		shared = append(shared, item.CustomTypeDeclarations()...)
		shared = append(shared, item.TypeAliasDeclarations()...)
		shared = append(shared, item.Encoders()...)
	}
	declarations = append(declarations, unique(shared)...)

	name := ModuleName(opts.modulePrefix(), cmp.TagName)
	source, err := render(tmplModule, moduleData{
		Name:         name,
		Exposing:     exposures(items),
		Declarations: declarations,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		Tag:         cmp.TagName,
		Name:        name,
		Path:        ModulePath(opts.OutputDir, cmp.TagName),
		Source:      source,
		Items:       len(items),
		Diagnostics: diags,
	}, nil
}

// componentItems builds the bindable items in order: properties, the
// implicit slot attribute, then events.
func componentItems(cmp metadata.Component, opts Options) ([]binding.Item, errors.ErrorList, error) {
	var items []binding.Item
	var diags errors.ErrorList

	properties := cmp.Properties
	if opts.SlotAttribute && !hasProperty(cmp, "slot") {
		properties = append(properties[:len(properties):len(properties)], binding.SlotProperty())
	}

	for _, p := range properties {
		prop, err := binding.NewProp(cmp.TagName, p)
		if err != nil {
			return nil, nil, fmt.Errorf("component %s: %w", cmp.TagName, err)
		}
		if !prop.Supported() {
			diags = append(diags, errors.NewUnsupportedPropertyType(cmp.TagName, p.Name, typeText(p)))
			continue
		}
		items = append(items, prop)
	}

	for _, e := range cmp.Events {
		event := binding.NewEvent(cmp.TagName, e)
		if !event.Supported() {
			diags = append(diags, errors.NewUnsupportedEvent(cmp.TagName, e.Name))
			continue
		}
		items = append(items, event)
	}

	return items, diags, nil
}

func buildView(cmp metadata.Component, items []binding.Item) viewData {
	view := viewData{Tag: cmp.TagName, Children: "[]"}
	isOnly := len(items) == 1

	switch {
	case isOnly:
		view.Signature = append(view.Signature, items[0].ArgAnnotation())
		view.Arguments = append(view.Arguments, items[0].FieldName())
	case len(items) > 1:
		props := "Props"
		if hasEvents(items) {
			props = "Props msg"
		}
		view.Signature = append(view.Signature, props)
		view.Arguments = append(view.Arguments, binding.RecordArgument)
	}

	if cmp.TakesChildren() {
		view.Signature = append(view.Signature, "List (Html msg)")
		view.Arguments = append(view.Arguments, "children")
		view.Children = "children"
	}
	view.Signature = append(view.Signature, "Html msg")

	for _, item := range items {
		view.Bindings = append(view.Bindings, item.MaybeHTMLAttribute(isOnly))
	}
	return view
}

// exposures lists view, Props and every generated type, each once
func exposures(items []binding.Item) []string {
	exposing := []string{"view"}
	if len(items) > 1 {
		exposing = append(exposing, "Props")
	}

	var types []string
	for _, item := range items {
		for _, name := range item.CustomTypeNames() {
			types = append(types, name+"(..)")
		}
	}
	for _, item := range items {
		types = append(types, item.TypeAliasNames()...)
	}
	return append(exposing, unique(types)...)
}

func hasEvents(items []binding.Item) bool {
	for _, item := range items {
		if item.IsEvent() {
			return true
		}
	}
	return false
}

func hasProperty(cmp metadata.Component, name string) bool {
	for _, p := range cmp.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

func typeText(p metadata.Property) string {
	if p.ComplexType.Original != "" {
		return p.ComplexType.Original
	}
	return p.ComplexType.Resolved
}

func mapItems(items []binding.Item, f func(binding.Item) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}

// unique drops repeated strings, keeping the first occurrence
func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
