package routesdoc

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Route represents a single documented endpoint
type Route struct {
	Method      string
	Path        string
	Description string
}

// Doc represents a parsed ROUTES.md file
type Doc struct {
	Title  string
	Routes []Route
}

// FindRoute finds a route entry by method and path
func (d *Doc) FindRoute(method, path string) *Route {
	for i := range d.Routes {
		if strings.EqualFold(d.Routes[i].Method, method) && d.Routes[i].Path == path {
			return &d.Routes[i]
		}
	}

	return nil
}

// Parse parses a routes document into its endpoint entries
func Parse(source []byte) (*Doc, error) {
	md := goldmark.New()
	reader := text.NewReader(source)
	ctx := parser.NewContext()
	docNode := md.Parser().Parse(reader, parser.WithContext(ctx))

	doc := &Doc{}

	// Collect all h2 headings with their positions from the AST
	type headingInfo struct {
		method       string
		path         string
		contentStart int
		headingStart int
	}
	var headings []headingInfo

	_ = ast.Walk(docNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		if heading.Level == 1 && doc.Title == "" {
			doc.Title = extractHeadingText(heading, source)
			return ast.WalkContinue, nil
		}

		if heading.Level == 2 {
			headingText := extractHeadingText(heading, source)
			method, path := parseRouteHeading(headingText)

			lines := heading.Lines()
			headingStart := 0
			contentStart := 0
			if lines.Len() > 0 {
				headingStart = lines.At(0).Start
				contentStart = lines.At(lines.Len() - 1).Stop
			}

			headings = append(headings, headingInfo{
				method:       method,
				path:         path,
				contentStart: contentStart,
				headingStart: headingStart,
			})
		}

		return ast.WalkContinue, nil
	})

	// Extract descriptions for each entry using AST positions
	for i, h := range headings {
		var contentEnd int
		if i+1 < len(headings) {
			contentEnd = headings[i+1].headingStart
		} else {
			contentEnd = len(source)
		}

		description := ""
		if h.contentStart < contentEnd {
			description = strings.TrimSpace(string(source[h.contentStart:contentEnd]))
		}

		doc.Routes = append(doc.Routes, Route{
			Method:      h.method,
			Path:        h.path,
			Description: description,
		})
	}

	return doc, nil
}

func extractHeadingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		} else if link, ok := child.(*ast.Link); ok {
			for linkChild := link.FirstChild(); linkChild != nil; linkChild = linkChild.NextSibling() {
				if textNode, ok := linkChild.(*ast.Text); ok {
					buf.Write(textNode.Segment.Value(source))
				}
			}
		}
	}

	return buf.String()
}

func parseRouteHeading(heading string) (method, path string) {
	heading = strings.TrimSpace(heading)

	if idx := strings.IndexByte(heading, ' '); idx != -1 {
		method = strings.TrimSpace(heading[:idx])
		path = strings.TrimSpace(heading[idx+1:])
	} else {
		method = heading
	}

	return method, path
}
