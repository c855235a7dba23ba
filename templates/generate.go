// Package templates holds the templ components of the site. The *_templ.go
// files are generated and not checked in.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate
