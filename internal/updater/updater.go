// Package updater drives a full run: discover configuration files,
// collect their module references, fetch the tags each referenced
// repository offers, and rewrite files whose pins should move.
package updater

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/colorstring"

	"github.com/qrthey/tf-sources-updater/internal/modref"
	"github.com/qrthey/tf-sources-updater/internal/scan"
	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

// TagSource abstracts the remote tag lookup so runs can be exercised
// without the GitHub API.
type TagSource interface {
	Tags(ctx context.Context, owner, repo string) ([]string, error)
}

// RepositoryID identifies one remote repository. All references that
// share an ID are resolved with a single remote lookup per run.
type RepositoryID struct {
	Owner string
	Repo  string
}

func (id RepositoryID) String() string {
	return id.Owner + "/" + id.Repo
}

// Updater holds the configuration for one run. All fields must be set,
// except CLIColor: when it is nil no coloring is done.
type Updater struct {
	Root     string
	Strategy semtag.Strategy
	Source   TagSource
	Ui       cli.Ui
	CLIColor *colorstring.Colorize
}

// Colorize returns the colorization to apply to user-facing output.
func (u *Updater) Colorize() *colorstring.Colorize {
	if u.CLIColor != nil {
		return u.CLIColor
	}

	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: true,
	}
}

// Plan holds everything discovered from the local tree before any
// remote call is made. Files with no references are already dropped,
// and Repositories is deduplicated in order of first appearance.
type Plan struct {
	Files        []*modref.File
	Repositories []RepositoryID
}

// Plan scans the tree and collects the files and repositories a run
// would touch.
func (u *Updater) Plan() (*Plan, error) {
	paths, err := scan.FindConfigFiles(u.Root)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	seen := make(map[RepositoryID]bool)
	for _, path := range paths {
		file, err := modref.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if len(file.References) == 0 {
			continue
		}
		log.Printf("[DEBUG] updater: %s has %d module references", path, len(file.References))
		plan.Files = append(plan.Files, file)
		for _, ref := range file.References {
			id := RepositoryID{Owner: ref.Owner, Repo: ref.Repo}
			if !seen[id] {
				seen[id] = true
				plan.Repositories = append(plan.Repositories, id)
			}
		}
	}
	return plan, nil
}

// Catalog maps each repository to its parsed tags for the duration of
// one run. There is no persistence across runs.
type Catalog map[RepositoryID][]semtag.Tag

// fetchCatalog performs one remote lookup per repository, reporting
// progress. The first failure aborts the whole fetch so that a run
// never writes files while other repositories remain unresolved.
func (u *Updater) fetchCatalog(ctx context.Context, plan *Plan) (Catalog, error) {
	catalog := make(Catalog, len(plan.Repositories))
	for i, id := range plan.Repositories {
		u.Ui.Output(fmt.Sprintf("Fetching tags for %s (%d of %d)...", id, i+1, len(plan.Repositories)))
		raws, err := u.Source.Tags(ctx, id.Owner, id.Repo)
		if err != nil {
			return nil, err
		}
		tags := make([]semtag.Tag, 0, len(raws))
		for _, raw := range raws {
			tag, err := semtag.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("repository %s: %w", id, err)
			}
			tags = append(tags, tag)
		}
		catalog[id] = tags
	}
	return catalog, nil
}

// resolveReference decides the replacement tag for a single reference,
// or reports that it should stay as it is. A module whose current tag
// the repository does not itself know is never touched.
func (u *Updater) resolveReference(catalog Catalog, path string, ref modref.Reference) (semtag.Tag, bool) {
	tags, ok := catalog[RepositoryID{Owner: ref.Owner, Repo: ref.Repo}]
	if !ok {
		return semtag.Tag{}, false
	}
	if !semtag.ContainsRaw(tags, ref.Tag.Raw) {
		log.Printf("[INFO] updater: %s pins %s at %q, which is not a tag the repository knows; leaving it unchanged",
			path, ref.RepositoryID(), ref.Tag.Raw)
		return semtag.Tag{}, false
	}
	selected, err := u.Strategy.Select(ref.Tag, tags)
	if err != nil {
		log.Printf("[WARN] updater: no selectable tag for %s in %s: %s", ref.RepositoryID(), path, err)
		return semtag.Tag{}, false
	}
	return selected, true
}

// Update runs the full pipeline and persists every file whose content
// changed, reporting each modified path. On a remote fetch failure it
// returns before any file has been written.
func (u *Updater) Update(ctx context.Context) error {
	plan, err := u.Plan()
	if err != nil {
		return err
	}
	if len(plan.Files) == 0 {
		u.Ui.Output("No git-sourced module references found.")
		return nil
	}

	u.Ui.Output(fmt.Sprintf("Found %d distinct repositories referenced across %d files.",
		len(plan.Repositories), len(plan.Files)))

	catalog, err := u.fetchCatalog(ctx, plan)
	if err != nil {
		return err
	}

	modified := 0
	for _, file := range plan.Files {
		newText, changed := modref.Rewrite(string(file.Content), file.References, func(ref modref.Reference) (semtag.Tag, bool) {
			return u.resolveReference(catalog, file.Path, ref)
		})
		if !changed {
			continue
		}
		if err := os.WriteFile(file.Path, []byte(newText), file.Mode); err != nil {
			return fmt.Errorf("writing %s: %w", file.Path, err)
		}
		u.Ui.Output("Updated " + file.Path)
		modified++
	}

	if modified == 0 {
		u.Ui.Output(u.Colorize().Color(
			"[reset][bold][green]All module references are already at their selected tags.[reset]"))
	} else {
		u.Ui.Output(u.Colorize().Color(fmt.Sprintf(
			"[reset][bold][green]Updated %d file(s).[reset]", modified)))
	}
	return nil
}
