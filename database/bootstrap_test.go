package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/config"
	"farmhub/entities"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "farm.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("farm.db"))
	assert.Equal(t, "file:farm.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("file:farm.db?mode=rwc"))
}

func TestMigrateFixesLegacyRows(t *testing.T) {
	db := OpenTest(t)

	gh := entities.Greenhouse{Name: "GH1"}
	require.NoError(t, db.Create(&gh).Error)
	bed := entities.RaisedBed{GreenhouseID: gh.ID, Side: entities.SideLeft, Name: "L1", Status: entities.BedOccupied}
	require.NoError(t, db.Create(&bed).Error)
	v := entities.Variety{Name: "Methi", DaysToHarvest: 30}
	require.NoError(t, db.Create(&v).Error)
	crop := entities.Crop{RaisedBedID: bed.ID, VarietyID: v.ID, SowingDate: "2024-01-01", Status: entities.CropReady}
	require.NoError(t, db.Omit("RaisedBed", "Variety").Create(&crop).Error)

	legacy := []entities.Customer{
		{Name: "A", Phone: "+91 98765 43210"},
		{Name: "B", Phone: "12345"},
		{Name: "C", Phone: "9876543210"},
		{Name: "D", Phone: "0 98765 00000"},
	}
	require.NoError(t, db.Create(&legacy).Error)

	require.NoError(t, Migrate(db))

	var got entities.Crop
	require.NoError(t, db.First(&got, crop.ID).Error)
	assert.Equal(t, entities.CropGrowing, got.Status)

	phones := map[string]string{}
	var cs []entities.Customer
	require.NoError(t, db.Order("id").Find(&cs).Error)
	for _, c := range cs {
		phones[c.Name] = c.Phone
	}
	// A collides with C once normalized and stays untouched.
	assert.Equal(t, "+91 98765 43210", phones["A"])
	assert.Equal(t, "12345", phones["B"])
	assert.Equal(t, "9876543210", phones["C"])
	assert.Equal(t, "9876500000", phones["D"])
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(configFor("mysql"))
	require.Error(t, err)

	_, err = Open(configFor("postgres"))
	require.ErrorContains(t, err, "DATABASE_URL")
}

func configFor(driver string) config.AppConfig {
	return config.AppConfig{DBDriver: driver}
}
