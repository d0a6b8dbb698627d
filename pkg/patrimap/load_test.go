package patrimap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to the first sheet of a new workbook in dir.
func writeWorkbook(t *testing.T, dir, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("SetCellValue(%s): %v", cell, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func ownershipRows() [][]any {
	return [][]any{
		{"Controladas", "Ana % de Participação", "Bruno % de Participação"},
		{"Alfa Ltda", 0.5, "25,5%"},
		{"Beta SA", nil, 100},
		{nil, 10, nil},
		{"Gama", 0, nil},
	}
}

func propertyRows() [][]any {
	return [][]any{
		{"EMPRESA", "NOME DO IMÓVEL", "% PART NO IMOVEL", "ENDEREÇO COMPLETO"},
		{"Alfa Ltda", "Galpão Norte", 1, "Rua A, 10"},
		{"Alfa Ltda", "Sala 301", "50%", "Av. B, 200"},
		{"Beta SA ", "Loja", 0.3, "Rua C, 5"},
	}
}

func TestLoadOwnership(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "participacao.xlsx", ownershipRows())

	m, err := LoadOwnership(path, "")
	if err != nil {
		t.Fatalf("LoadOwnership failed: %v", err)
	}

	want := models.Matrix{
		CompanyColumn: "Controladas",
		OwnerColumns:  []string{"Ana % de Participação", "Bruno % de Participação"},
		Rows: []models.MatrixRow{
			{Row: 2, Company: "Alfa Ltda", Cells: []any{0.5, "25,5%"}},
			{Row: 3, Company: "Beta SA", Cells: []any{nil, int64(100)}},
			{Row: 5, Company: "Gama", Cells: []any{int64(0), nil}},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("LoadOwnership mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProperties(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "patrimonio.xlsx", propertyRows())

	got, err := LoadProperties(path, "")
	if err != nil {
		t.Fatalf("LoadProperties failed: %v", err)
	}

	want := []models.PropertyRecord{
		{Row: 2, Company: "Alfa Ltda", PropertyName: "Galpão Norte", RawShare: int64(1), Address: "Rua A, 10"},
		{Row: 3, Company: "Alfa Ltda", PropertyName: "Sala 301", RawShare: "50%", Address: "Av. B, 200"},
		{Row: 4, Company: "Beta SA ", PropertyName: "Loja", RawShare: 0.3, Address: "Rua C, 5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadProperties mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		OwnershipPath:  writeWorkbook(t, dir, "participacao.xlsx", ownershipRows()),
		PropertiesPath: writeWorkbook(t, dir, "patrimonio.xlsx", propertyRows()),
	}

	snap, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []models.OwnershipRecord{
		{Company: "Alfa Ltda", Owner: "Ana", Percentage: 50},
		{Company: "Alfa Ltda", Owner: "Bruno", Percentage: 25.5},
		{Company: "Beta SA", Owner: "Bruno", Percentage: 100},
	}
	if diff := cmp.Diff(want, snap.Ownership); diff != "" {
		t.Errorf("Ownership mismatch (-want +got):\n%s", diff)
	}
	if len(snap.Properties) != 3 {
		t.Errorf("Expected 3 properties, got %d", len(snap.Properties))
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt not set")
	}

	again, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if diff := cmp.Diff(snap.Ownership, again.Ownership); diff != "" {
		t.Errorf("second load differs (-first +second):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeWorkbook(t, dir, "participacao.xlsx", ownershipRows())
	props := writeWorkbook(t, dir, "patrimonio.xlsx", propertyRows())
	noCompany := writeWorkbook(t, dir, "sem_controladas.xlsx", [][]any{{"Empresa", "Ana % de Participação"}, {"Alfa", 1}})
	noAddress := writeWorkbook(t, dir, "sem_endereco.xlsx", [][]any{{"EMPRESA", "NOME DO IMÓVEL", "% PART NO IMOVEL"}})

	garbage := filepath.Join(dir, "garbage.xlsx")
	if err := os.WriteFile(garbage, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"missing ownership file", Options{OwnershipPath: filepath.Join(dir, "nope.xlsx"), PropertiesPath: props}, ErrFileNotFound},
		{"missing properties file", Options{OwnershipPath: good, PropertiesPath: filepath.Join(dir, "nope.xlsx")}, ErrFileNotFound},
		{"invalid format", Options{OwnershipPath: garbage, PropertiesPath: props}, ErrInvalidFormat},
		{"no company column", Options{OwnershipPath: noCompany, PropertiesPath: props}, ErrMissingColumn},
		{"no address column", Options{OwnershipPath: good, PropertiesPath: noAddress}, ErrMissingColumn},
		{"unknown sheet", Options{OwnershipPath: good, PropertiesPath: props, Sheet: "Plan2"}, ErrNoSheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Load(context.Background(), tt.opts)
			if snap != nil {
				t.Errorf("expected no snapshot, got %+v", snap)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load error = %v, expected %v", err, tt.want)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Errorf("expected *LoadError, got %T", err)
			}
		})
	}
}

func TestLoadCanceled(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		OwnershipPath:  writeWorkbook(t, dir, "participacao.xlsx", ownershipRows()),
		PropertiesPath: writeWorkbook(t, dir, "patrimonio.xlsx", propertyRows()),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, opts); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
