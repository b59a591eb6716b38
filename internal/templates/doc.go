// Package templates scaffolds new markout projects.
//
// Each template is a map of relative paths to text/template bodies,
// expanded with the project name, module path, and description and
// written out by Create. Two templates ship with the CLI:
//
//   - site: multi-page site with a shared layout and static assets
//   - minimal: one page and a build entrypoint, nothing else
//
// A generated project builds and previews immediately after
// `markout create`:
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tmpl.Create(projectDir, cfg); err != nil {
//	    log.Fatal(err)
//	}
package templates
