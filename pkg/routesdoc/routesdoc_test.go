package routesdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRoutes = `# Routes

HTTP surface of shop-admin. Keep this file current.

## GET /

Redirects to the dashboard.

## GET /auth/login

Renders the sign-in form.

## POST /auth/login

Verifies credentials and issues the session token.

## GET /admin/users

Lists user accounts.
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(validRoutes))
	require.NoError(t, err)

	assert.Equal(t, "Routes", doc.Title)
	require.Len(t, doc.Routes, 4)

	assert.Equal(t, "GET", doc.Routes[0].Method)
	assert.Equal(t, "/", doc.Routes[0].Path)
	assert.Equal(t, "Redirects to the dashboard.", doc.Routes[0].Description)

	assert.Equal(t, "POST", doc.Routes[2].Method)
	assert.Equal(t, "/auth/login", doc.Routes[2].Path)
}

func TestFindRoute(t *testing.T) {
	doc, err := Parse([]byte(validRoutes))
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		found  bool
	}{
		{"exact match", "GET", "/auth/login", true},
		{"method is case-insensitive", "get", "/auth/login", true},
		{"different method", "DELETE", "/auth/login", false},
		{"unknown path", "GET", "/nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := doc.FindRoute(tt.method, tt.path)
			if tt.found {
				require.NotNil(t, route)
				assert.Equal(t, tt.path, route.Path)
			} else {
				assert.Nil(t, route)
			}
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	result := Validate([]byte(validRoutes))
	assert.True(t, result.IsValid(), "Expected valid routes doc, got errors: %v", result.Errors)
}

func TestValidate_MissingTitle(t *testing.T) {
	routes := `## GET /

Redirects to the dashboard.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasError(result, "Missing routes title (# Routes)"))
}

func TestValidate_BadHeading(t *testing.T) {
	routes := `# Routes

## GET

Missing a path.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "should be 'METHOD /path'"))
}

func TestValidate_InvalidMethod(t *testing.T) {
	routes := `# Routes

## FETCH /users

Lists users.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Invalid method 'FETCH'"))
}

func TestValidate_BadPath(t *testing.T) {
	routes := `# Routes

## GET users

Lists users.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "should start with '/'"))
}

func TestValidate_DuplicateRoute(t *testing.T) {
	routes := `# Routes

## GET /users

Lists users.

## GET /users

Lists users again.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Duplicate route 'GET /users'"))
}

func TestValidate_MissingDescription(t *testing.T) {
	routes := `# Routes

## GET /users

## GET /reports

Shows reports.
`
	result := Validate([]byte(routes))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "'GET /users' is missing a description"))
}

func hasError(result *ValidationResult, message string) bool {
	for _, e := range result.Errors {
		if e.Message == message {
			return true
		}
	}
	return false
}

func hasErrorContaining(result *ValidationResult, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
