// Package routesdoc parses and validates the docs/ROUTES.md file a
// scaffolded project carries.
//
// The format is one `## METHOD /path` heading per endpoint with a
// prose description underneath. `panelctl routes verify` keeps the
// file honest as the generated app grows.
package routesdoc
