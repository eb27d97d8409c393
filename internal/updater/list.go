package updater

import (
	"context"
	"fmt"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

// refGroup collects the distinct tags one repository is pinned at,
// with the files each pin appears in, in order of first appearance.
type refGroup struct {
	pins []*pin
}

type pin struct {
	tag   semtag.Tag
	paths []string
}

func (g *refGroup) add(tag semtag.Tag, path string) {
	for _, p := range g.pins {
		if p.tag.Raw == tag.Raw {
			p.paths = append(p.paths, path)
			return
		}
	}
	g.pins = append(g.pins, &pin{tag: tag, paths: []string{path}})
}

// List prints every repository the tree references and the tags it is
// pinned at. With showLocations each pin also lists its files; with
// checkUpgrades the remote is queried and the tag the configured
// strategy would select is shown next to each pin.
func (u *Updater) List(ctx context.Context, showLocations, checkUpgrades bool) error {
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

	groups := make(map[RepositoryID]*refGroup, len(plan.Repositories))
	for _, id := range plan.Repositories {
		groups[id] = &refGroup{}
	}
	for _, file := range plan.Files {
		for _, ref := range file.References {
			groups[RepositoryID{Owner: ref.Owner, Repo: ref.Repo}].add(ref.Tag, file.Path)
		}
	}

	var catalog Catalog
	if checkUpgrades {
		catalog, err = u.fetchCatalog(ctx, plan)
		if err != nil {
			return err
		}
	}

	for _, id := range plan.Repositories {
		u.Ui.Output(u.Colorize().Color("[bold]" + id.String() + "[reset]"))
		for _, p := range groups[id].pins {
			line := "  " + p.tag.Raw
			if checkUpgrades {
				line += "  " + u.upgradeNote(catalog[id], p.tag)
			}
			u.Ui.Output(line)
			if showLocations {
				for _, path := range p.paths {
					u.Ui.Output("    " + path)
				}
			}
		}
	}
	return nil
}

// upgradeNote describes what the configured strategy would do with a
// pin, for the read-only listing.
func (u *Updater) upgradeNote(tags []semtag.Tag, current semtag.Tag) string {
	if !semtag.ContainsRaw(tags, current.Raw) {
		return "(not a tag the repository knows; would be left unchanged)"
	}
	selected, err := u.Strategy.Select(current, tags)
	if err != nil || selected.Raw == current.Raw {
		return "(up to date)"
	}
	return u.Colorize().Color("[yellow]-> " + selected.Raw + "[reset]")
}
