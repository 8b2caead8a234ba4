package main

import (
	"sync"

	"github.com/gotml-dev/gotml/pkg/dom"
)

// The demo document exercises elements, attribute helpers and a
// user-defined component. It is what render, serve and publish
// operate on out of the box.

var (
	demoOnce sync.Once
	demoCard func(args ...any) *dom.Node
)

func registerDemoComponents() {
	demoOnce.Do(func() {
		demoCard = dom.Define("demo-card", []string{"label", "tone"}, func(attrs *dom.AttrSet, children []*dom.Node) (*dom.Node, error) {
			label, _ := attrs.Get("label")
			tone, _ := attrs.Get("tone")

			class := "card"
			if tone != "" {
				class += " card-" + tone
			}
			return dom.NewElement(nil, "section",
				dom.Class(class),
				dom.H2(label),
				[]any{children},
			)
		})
	})
}

func demoDocument() *dom.Node {
	registerDemoComponents()

	features := []string{
		"Per-tag constructors",
		"Ordered attributes",
		"Reactive components",
		"Configurable escaping",
	}

	return dom.Html(
		dom.Head(
			dom.Meta(dom.Charset("utf-8")),
			dom.Meta(dom.Name("viewport"), dom.Content("width=device-width, initial-scale=1")),
			dom.Title("gotml demo"),
		),
		dom.Body(
			dom.Header(
				dom.H1("gotml"),
				dom.P("HTML documents as Go values."),
			),
			dom.Main(
				demoCard(
					dom.Attr{Key: "label", Value: "Features"},
					dom.Attr{Key: "tone", Value: "info"},
					dom.Ul(dom.Range(features, func(f string, _ int) *dom.Node {
						return dom.Li(f)
					})),
				),
				demoCard(
					dom.Attr{Key: "label", Value: "Escaping"},
					dom.P("Text like <this> & \"that\" is escaped at construction time."),
				),
			),
			dom.Footer(
				dom.Small("Rendered by gotml ", version),
			),
		),
	)
}
