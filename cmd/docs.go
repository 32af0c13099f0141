package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"refgenome":      {"refgenome", 0, ""},
	"refgenome_dict": {"dict", 0, "refgenome"},
	"refgenome_seq":  {"seq", 1, "refgenome"},
}

// docsCmd regenerates the Markdown documentation pages
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the refgenome commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTreeCustom(RootCmd, "./docs", filePrepender, linkHandler); err != nil {
			stderr.Fatalf("failed to generate docs: %v", err)
		}
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}
	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "refgenome" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
