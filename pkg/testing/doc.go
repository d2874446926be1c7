// Package testing provides helpers for testing parsed component trees.
//
// # Finders
//
// Locate components below a root:
//
//	title := spectest.Find(root, spectest.ByID("title")).First()
//	labels := spectest.Find(root, spectest.ByCategory(components.CategoryLabel)).Count()
//
// # Snapshot Testing
//
// Capture and compare a component tree against a golden file:
//
//	snapshot := spectest.CaptureSnapshot(adapter.Root)
//	snapshot.MatchesFile(t, "testdata/settings.snapshot.json")
//
// Update snapshots with:
//
//	UISPEC_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import spectest "github.com/go-drift/uispec/pkg/testing"
package testing
