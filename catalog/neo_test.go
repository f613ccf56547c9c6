package catalog

import (
	"errors"
	"os"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDecodeNEO(t *testing.T) {
	f, err := os.Open("testdata/3542519.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	neo, err := DecodeNEO(f)
	if err != nil {
		t.Fatal(err)
	}
	if neo.ID != "3542519" || neo.Name != "(2010 PK9)" || !neo.Hazardous {
		t.Fatalf("unexpected %+v", neo)
	}
	el, err := neo.Elements()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(el.A(), 1.605927811519486, 1e-15) || !scalar.EqualWithinAbs(el.E(), 0.5796915628498919, 1e-15) {
		t.Fatalf("elements %s", el)
	}
	if el.Epoch() != 2460600.5 || el.Period() != 743.3480826227549 {
		t.Fatalf("elements %s", el)
	}
	if len(neo.CloseApproachData) != 1 {
		t.Fatalf("%d close approaches", len(neo.CloseApproachData))
	}
	ca := neo.CloseApproachData[0]
	// 2024-06-15T03:12Z
	if !scalar.EqualWithinAbs(ca.JulianDate(), 2460476.633333333, 1e-8) {
		t.Fatalf("close approach JD %f", ca.JulianDate())
	}
	if km, err := ca.MissDistanceKm(); err != nil || km != 32534888.167 {
		t.Fatalf("miss distance %f (%v)", km, err)
	}
	offsets := neo.ApproachOffsets(el)
	if !scalar.EqualWithinAbs(offsets[0], ca.JulianDate()-2460600.5, 1e-12) {
		t.Fatalf("offset %f", offsets[0])
	}
}

func TestNEOMissingData(t *testing.T) {
	neo, err := DecodeNEO(strings.NewReader(`{"id": "1", "name": "nothing"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := neo.Elements(); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing orbital_data: %v", err)
	}
	neo, err = DecodeNEO(strings.NewReader(`{"id": "1", "name": "partial", "orbital_data": {"semi_major_axis": "1.2", "eccentricity": "0.1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = neo.Elements()
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "inclination" {
		t.Fatalf("expected missing inclination: %v", err)
	}
	if _, err := DecodeNEO(strings.NewReader(`{`)); err == nil {
		t.Fatal("truncated document accepted")
	}
}

func TestOrbitalDataRecord(t *testing.T) {
	d := OrbitalData{SemiMajorAxis: "1", PerihelionTime: ""}
	rec := d.Record()
	if len(rec) != 1 || rec["semi_major_axis"] != "1" {
		t.Fatalf("record %v", rec)
	}
}
