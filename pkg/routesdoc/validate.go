package routesdoc

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a single validation issue
type ValidationError struct {
	Line    int
	Message string
}

// ValidationResult holds all validation errors
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) AddError(line int, message string) {
	r.Errors = append(r.Errors, ValidationError{Line: line, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

var (
	pathRegex    = regexp.MustCompile(`^/[A-Za-z0-9_./:-]*$`)
	validMethods = map[string]bool{
		"GET":    true,
		"POST":   true,
		"PUT":    true,
		"PATCH":  true,
		"DELETE": true,
	}
)

// Validate checks a routes document's structure
func Validate(source []byte) *ValidationResult {
	result := &ValidationResult{}
	lines := strings.Split(string(source), "\n")

	hasTitle := false
	seen := make(map[string]int)

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		// Check for title
		if strings.HasPrefix(trimmed, "# ") {
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "routes") {
				result.AddError(lineNum, "Title should contain 'Routes'")
			}
		}

		// Check route headings
		if strings.HasPrefix(trimmed, "## ") {
			entry := strings.TrimPrefix(trimmed, "## ")
			fields := strings.Fields(entry)

			if len(fields) != 2 {
				result.AddError(lineNum, fmt.Sprintf("Route heading '%s' should be 'METHOD /path'", entry))
				continue
			}

			method, path := fields[0], fields[1]
			if !validMethods[method] {
				result.AddError(lineNum, fmt.Sprintf("Invalid method '%s'. Valid methods: GET, POST, PUT, PATCH, DELETE", method))
			}
			if !pathRegex.MatchString(path) {
				result.AddError(lineNum, fmt.Sprintf("Path '%s' should start with '/' and contain no spaces", path))
			}

			key := method + " " + path
			if first, ok := seen[key]; ok {
				result.AddError(lineNum, fmt.Sprintf("Duplicate route '%s' (first defined on line %d)", key, first))
			} else {
				seen[key] = lineNum
			}
		}
	}

	if !hasTitle {
		result.AddError(0, "Missing routes title (# Routes)")
	}

	// Every route needs a description
	if doc, err := Parse(source); err == nil {
		for _, route := range doc.Routes {
			if route.Description == "" {
				result.AddError(0, fmt.Sprintf("Route '%s %s' is missing a description", route.Method, route.Path))
			}
		}
	}

	return result
}
