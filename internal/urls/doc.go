// Package urls provides centralized constants for the endpoints the field
// builder talks to.
//
// Usage:
//
//	import "github.com/muurk/fieldbuilder/internal/urls"
//
//	client := store.NewClient(urls.DefaultRecordServer)
package urls
