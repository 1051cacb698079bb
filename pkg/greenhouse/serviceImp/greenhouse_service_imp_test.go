package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/greenhouse/repositoryImp"
	"farmhub/pkg/greenhouse/service"
)

func newSvc(t *testing.T) (*greenhouseSvc, *gorm.DB) {
	db := database.OpenTest(t)
	s := NewGreenhouseService(repositoryImp.New(db), time.UTC).(*greenhouseSvc)
	s.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return s, db
}

func TestCreateGreenhouseLaysOutBeds(t *testing.T) {
	s, _ := newSvc(t)

	g, err := s.CreateGreenhouse(service.CreateGreenhouseInput{Name: " GH-North ", BedsPerSide: 3})
	require.NoError(t, err)
	assert.Equal(t, "GH-North", g.Name)

	got, err := s.GetGreenhouse(g.ID)
	require.NoError(t, err)
	var names []string
	for _, b := range got.Beds {
		names = append(names, b.Name)
		assert.Equal(t, entities.BedAvailable, b.Status)
	}
	assert.Equal(t, []string{"L1", "L2", "L3", "R1", "R2", "R3"}, names)
}

func TestCreateGreenhouseValidation(t *testing.T) {
	s, _ := newSvc(t)

	_, err := s.CreateGreenhouse(service.CreateGreenhouseInput{Name: "", BedsPerSide: 2})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = s.CreateGreenhouse(service.CreateGreenhouseInput{Name: "GH", BedsPerSide: 0})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = s.CreateGreenhouse(service.CreateGreenhouseInput{Name: "GH", BedsPerSide: 2})
	require.NoError(t, err)
	_, err = s.CreateGreenhouse(service.CreateGreenhouseInput{Name: "GH", BedsPerSide: 2})
	assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)
}

func TestEnsureGreenhouseIsIdempotent(t *testing.T) {
	s, _ := newSvc(t)

	g1, created, err := s.EnsureGreenhouse("Main", 2)
	require.NoError(t, err)
	assert.True(t, created)

	g2, created, err := s.EnsureGreenhouse("Main", 5)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, g1.ID, g2.ID)

	beds, err := s.ListBeds(&g1.ID, "")
	require.NoError(t, err)
	assert.Len(t, beds, 4)
}

func TestSetBedStatus(t *testing.T) {
	s, db := newSvc(t)
	g, err := s.CreateGreenhouse(service.CreateGreenhouseInput{Name: "GH", BedsPerSide: 1})
	require.NoError(t, err)
	bedID := g.Beds[0].ID

	b, err := s.SetBedStatus(bedID, entities.BedPreparation)
	require.NoError(t, err)
	assert.Equal(t, entities.BedPreparation, b.Status)

	_, err = s.SetBedStatus(bedID, entities.BedOccupied)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = s.SetBedStatus(9999, entities.BedAvailable)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	v := entities.Variety{Name: "Palak", DaysToHarvest: 20}
	require.NoError(t, db.Create(&v).Error)
	due := "2024-03-01"
	crop := entities.Crop{RaisedBedID: bedID, VarietyID: v.ID, SowingDate: "2024-02-10", ExpectedHarvestDate: &due, Status: entities.CropGrowing}
	require.NoError(t, db.Create(&crop).Error)

	_, err = s.SetBedStatus(bedID, entities.BedAvailable)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	bed, err := s.GetBed(bedID)
	require.NoError(t, err)
	require.Len(t, bed.ActiveCrops, 1)
	assert.Equal(t, entities.CropReady, bed.ActiveCrops[0].DisplayStatus)
	assert.Equal(t, "Palak", bed.ActiveCrops[0].Variety.Name)
}

func TestListBedsRejectsUnknownStatus(t *testing.T) {
	s, _ := newSvc(t)
	_, err := s.ListBeds(nil, "flooded")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
