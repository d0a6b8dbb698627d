// Package dashboard builds the Owner → Company → Property tree.
package dashboard

import (
	"sort"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/percent"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/reshape"
)

// Filter selects the owners shown.
type Filter struct {
	// Owners lists the owners to keep. Empty keeps every owner.
	Owners []string
}

func (f Filter) keeps(owner string) bool {
	if len(f.Owners) == 0 {
		return true
	}
	for _, o := range f.Owners {
		if o == owner {
			return true
		}
	}
	return false
}

// Build joins the ownership records with the property table. Companies are
// matched by exact string equality.
func Build(snap *models.Snapshot, f Filter) models.Dashboard {
	byCompany := make(map[string][]models.PropertyView)
	for _, p := range snap.Properties {
		byCompany[p.Company] = append(byCompany[p.Company], models.PropertyView{
			Name:    p.PropertyName,
			Share:   percent.PropertyShare(p.RawShare),
			Address: p.Address,
		})
	}

	d := models.Dashboard{AllOwners: reshape.Owners(snap.Ownership)}
	for _, owner := range reshape.OwnersInOrder(snap.Ownership) {
		if !f.keeps(owner) {
			continue
		}
		view := models.OwnerView{Owner: owner}
		for _, r := range snap.Ownership {
			if r.Owner != owner {
				continue
			}
			props := byCompany[r.Company]
			view.Companies = append(view.Companies, models.CompanyView{
				Company:       r.Company,
				Percentage:    r.Percentage,
				HasProperties: len(props) > 0,
				Properties:    props,
			})
		}
		d.Owners = append(d.Owners, view)
		d.Selected = append(d.Selected, owner)
	}
	sort.Strings(d.Selected)
	return d
}
