package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
)

func snapshot() *models.Snapshot {
	return &models.Snapshot{
		Ownership: []models.OwnershipRecord{
			{Company: "Alfa Ltda", Owner: "Zeca", Percentage: 50},
			{Company: "Beta SA", Owner: "Zeca", Percentage: 10},
			{Company: "Alfa Ltda", Owner: "Ana", Percentage: 25.5},
		},
		Properties: []models.PropertyRecord{
			{Row: 2, Company: "Alfa Ltda", PropertyName: "Galpão", RawShare: 1.0, Address: "Rua A"},
			{Row: 3, Company: "Alfa Ltda", PropertyName: "Sala", RawShare: "50%", Address: "Rua B"},
			{Row: 4, Company: "Beta SA ", PropertyName: "Loja", RawShare: 0.3, Address: "Rua C"},
		},
	}
}

func TestBuild(t *testing.T) {
	got := Build(snapshot(), Filter{})

	alfa := []models.PropertyView{
		{Name: "Galpão", Share: 100, Address: "Rua A"},
		{Name: "Sala", Share: 50, Address: "Rua B"},
	}
	want := models.Dashboard{
		AllOwners: []string{"Ana", "Zeca"},
		Selected:  []string{"Ana", "Zeca"},
		Owners: []models.OwnerView{
			{Owner: "Zeca", Companies: []models.CompanyView{
				{Company: "Alfa Ltda", Percentage: 50, HasProperties: true, Properties: alfa},
				// "Beta SA " in the property sheet does not match "Beta SA".
				{Company: "Beta SA", Percentage: 10},
			}},
			{Owner: "Ana", Companies: []models.CompanyView{
				{Company: "Alfa Ltda", Percentage: 25.5, HasProperties: true, Properties: alfa},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFilter(t *testing.T) {
	got := Build(snapshot(), Filter{Owners: []string{"Ana", "Ninguém"}})

	if diff := cmp.Diff([]string{"Ana", "Zeca"}, got.AllOwners); diff != "" {
		t.Errorf("AllOwners mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Ana"}, got.Selected); diff != "" {
		t.Errorf("Selected mismatch (-want +got):\n%s", diff)
	}
	if len(got.Owners) != 1 || got.Owners[0].Owner != "Ana" {
		t.Fatalf("expected only Ana, got %+v", got.Owners)
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(&models.Snapshot{}, Filter{})
	if len(got.Owners) != 0 || len(got.AllOwners) != 0 {
		t.Errorf("expected empty dashboard, got %+v", got)
	}
}
