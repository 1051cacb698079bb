package serviceImp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/variety/repositoryImp"
	"farmhub/pkg/variety/service"
)

func newSvc(t *testing.T) (service.VarietyService, *gorm.DB) {
	db := database.OpenTest(t)
	return NewVarietyService(repositoryImp.New(db)), db
}

func ptr(f float64) *float64 { return &f }

func TestCreateAndUpdateVariety(t *testing.T) {
	s, _ := newSvc(t)

	v, err := s.CreateVariety(service.VarietyInput{Name: " Methi ", DaysToHarvest: 30, PricePerBunch: ptr(20)})
	require.NoError(t, err)
	assert.Equal(t, "Methi", v.Name)

	_, err = s.CreateVariety(service.VarietyInput{Name: "Methi"})
	assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)

	_, err = s.CreateVariety(service.VarietyInput{Name: "Palak", PricePerKg: ptr(-1)})
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "price_per_kg", ae.Field)

	v, err = s.UpdateVariety(v.ID, service.VarietyInput{Name: "Methi", DaysToHarvest: 28, PricePer100g: ptr(12.5)})
	require.NoError(t, err)
	assert.Nil(t, v.PricePerBunch)
	require.NotNil(t, v.PricePer100g)
	assert.Equal(t, 12.5, *v.PricePer100g)

	_, err = s.UpdateVariety(999, service.VarietyInput{Name: "X"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteVarietyBlockedWhileReferenced(t *testing.T) {
	s, db := newSvc(t)
	v, err := s.CreateVariety(service.VarietyInput{Name: "Dill", DaysToHarvest: 40})
	require.NoError(t, err)

	gh := entities.Greenhouse{Name: "GH"}
	require.NoError(t, db.Create(&gh).Error)
	bed := entities.RaisedBed{GreenhouseID: gh.ID, Side: entities.SideLeft, Name: "L1"}
	require.NoError(t, db.Create(&bed).Error)
	crop := entities.Crop{RaisedBedID: bed.ID, VarietyID: v.ID, SowingDate: "2024-01-01", Status: entities.CropGrowing}
	require.NoError(t, db.Create(&crop).Error)

	err = s.DeleteVariety(v.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)

	require.NoError(t, db.Delete(&crop).Error)
	require.NoError(t, s.DeleteVariety(v.ID))
	assert.True(t, apperr.Is(s.DeleteVariety(v.ID), apperr.KindNotFound))
}

func TestImportCSVUpsertsByName(t *testing.T) {
	s, _ := newSvc(t)
	_, err := s.CreateVariety(service.VarietyInput{Name: "Methi", DaysToHarvest: 30, PricePerBunch: ptr(15), Notes: "keep"})
	require.NoError(t, err)

	csv := "\uFEFFVariety Name,Days,Bunch Price,Price per kg,Price_100g\n" +
		"methi,,20,,\n" +
		"Palak,25,10,80,\n" +
		"Coriander,abc,5,,\n" +
		",10,1,1,1\n" +
		"Basil,60,,,\u20b912.5\n"
	res, err := s.ImportVarieties(strings.NewReader(csv), ".csv")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "line 4 (Coriander)")

	list, err := s.ListVarieties()
	require.NoError(t, err)
	byName := map[string]entities.Variety{}
	for _, v := range list {
		byName[v.Name] = v
	}
	methi := byName["Methi"]
	assert.Equal(t, 30, methi.DaysToHarvest)
	assert.Equal(t, 20.0, *methi.PricePerBunch)
	assert.Equal(t, "keep", methi.Notes)
	assert.Equal(t, 80.0, *byName["Palak"].PricePerKg)
	assert.Equal(t, 12.5, *byName["Basil"].PricePer100g)
}

func TestImportXLSX(t *testing.T) {
	s, _ := newSvc(t)

	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"name", "days_to_harvest", "price_per_kg"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"Lettuce", 35, 120}))
	var buf bytes.Buffer
	require.NoError(t, x.Write(&buf))

	res, err := s.ImportVarieties(&buf, "xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	list, err := s.PriceList()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lettuce", list[0].Name)
	assert.Equal(t, 120.0, *list[0].PricePerKg)
}

func TestImportRejectsBadInput(t *testing.T) {
	s, _ := newSvc(t)
	_, err := s.ImportVarieties(strings.NewReader("a,b\n"), "json")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = s.ImportVarieties(strings.NewReader("days,price\n1,2\n"), "csv")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
