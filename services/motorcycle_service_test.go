package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"immat-api/models"
	"immat-api/repositories"
	"immat-api/testutil"
)

func newMotorcycleService(t *testing.T) (*MotorcycleService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewMotorcycleService(repositories.NewMotorcycleRepository(db), NewDateNormalizer()), db
}

func countMotorcycles(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Motorcycle{}).Count(&n).Error)
	return n
}

func TestBulkInsert_SingleObjectRoundTrip(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	n, err := svc.BulkInsert(ctx, []byte(`{
		"FrameNumber": "VIN-001",
		"Marque": "Honda",
		"MODELE": "CB500",
		"NFacture": 4512,
		"Color": "",
		"DateArrivage": "2024-03-15",
		"DateNaissance": "",
		"cnie": "AB12345",
		"VilleVente": "Rabat",
		"ProvinceVente": "Rabat"
	}`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, err := svc.GetByFrameNumber(ctx, "VIN-001")
	require.NoError(t, err)
	assert.Equal(t, "Honda", *m.Marque)
	assert.Equal(t, "CB500", *m.Modele)
	assert.Equal(t, "4512", *m.NFacture)
	assert.Equal(t, "2024-03-15", *m.DateArrivage)
	assert.Equal(t, "AB12345", *m.Cnie)
	assert.Equal(t, "Rabat", *m.VilleVente)
	assert.Nil(t, m.Color)
	assert.Nil(t, m.DateNaissance)
	assert.Nil(t, m.Client)
}

func TestBulkInsert_Array(t *testing.T) {
	svc, db := newMotorcycleService(t)

	n, err := svc.BulkInsert(context.Background(), []byte(`[
		{"FrameNumber": "A-1", "Color": "red", "unknown": "ignored"},
		{"FrameNumber": "A-2", "Color": "blue"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(2), countMotorcycles(t, db))
}

func TestBulkInsert_NoData(t *testing.T) {
	svc, _ := newMotorcycleService(t)

	for _, body := range []string{"", "   ", "null", "{}", "[]"} {
		_, err := svc.BulkInsert(context.Background(), []byte(body))
		assert.ErrorIs(t, err, ErrNoData, "body %q", body)
	}
}

func TestBulkInsert_InvalidInput(t *testing.T) {
	svc, db := newMotorcycleService(t)

	for _, body := range []string{
		`{"Marque": "Honda"}`,
		`[{"FrameNumber": "A-1"}, {"FrameNumber": "  "}]`,
		`[{"FrameNumber": "A-1"}, "oops"]`,
		`{"FrameNumber": "A-1", "Color": {"r": 1}}`,
		`{"FrameNumber": "A-1"} trailing`,
		`{"FrameNumber": "A-1"}}`,
		`[{"FrameNumber": "A-1"}, {}]`,
		`not json`,
	} {
		_, err := svc.BulkInsert(context.Background(), []byte(body))
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "body %q", body)
	}
	assert.Zero(t, countMotorcycles(t, db))
}

func TestBulkInsert_DuplicateKeyRollsBackBatch(t *testing.T) {
	svc, db := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "EXISTING"}`))
	require.NoError(t, err)

	_, err = svc.BulkInsert(ctx, []byte(`[
		{"FrameNumber": "NEW-1"},
		{"FrameNumber": "NEW-2"},
		{"FrameNumber": "EXISTING"}
	]`))
	require.Error(t, err)

	assert.Equal(t, int64(1), countMotorcycles(t, db))
	_, err = svc.GetByFrameNumber(ctx, "NEW-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateByFrameNumber(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-7", "Color": "red", "client": "Said", "Sexe": "M"}`))
	require.NoError(t, err)

	err = svc.UpdateByFrameNumber(ctx, "VIN-7", []byte(`{
		"FrameNumber": "VIN-7",
		"Color": "black",
		"client": "",
		"DateVenteClient": "2024-06-01",
		"DateNaissance": null
	}`))
	require.NoError(t, err)

	m, err := svc.GetByFrameNumber(ctx, "VIN-7")
	require.NoError(t, err)
	assert.Equal(t, "black", *m.Color)
	assert.Nil(t, m.Client)
	assert.Equal(t, "01/06/24", *m.DateVenteClient)
	assert.Nil(t, m.DateNaissance)
	// Untouched fields keep their value.
	assert.Equal(t, "M", *m.Sexe)
}

func TestUpdateByFrameNumber_StrictDateFallback(t *testing.T) {
	db := testutil.NewDB(t)
	dates := &DateNormalizer{Loose: func(string) (time.Time, error) { return time.Time{}, errors.New("no") }}
	svc := NewMotorcycleService(repositories.NewMotorcycleRepository(db), dates)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-8"}`))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-8", []byte(`{"DateArrivage": "15/03/24"}`)))

	m, err := svc.GetByFrameNumber(ctx, "VIN-8")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", *m.DateArrivage)
}

func TestUpdateByFrameNumber_Idempotent(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-9"}`))
	require.NoError(t, err)

	body := []byte(`{"Color": "green", "observation": "scratched tank", "revendeur": "Moto Atlas"}`)

	require.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-9", body))
	first, err := svc.GetByFrameNumber(ctx, "VIN-9")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-9", body))
	second, err := svc.GetByFrameNumber(ctx, "VIN-9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateByFrameNumber_Errors(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-1", "Color": "red"}`))
	require.NoError(t, err)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"Colour": "blue"}`))
	assert.ErrorIs(t, err, ErrUnknownField)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"FrameNumber": "VIN-2"}`))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"DateArrivage": "yesterday-ish"}`))
	var dErr *InvalidDateError
	assert.ErrorAs(t, err, &dErr)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"Color": "blue"} {"Color": "green"}`))
	assert.ErrorAs(t, err, &vErr)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"Sexe": "unspecified"}`))
	assert.ErrorAs(t, err, &vErr)

	err = svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`null`))
	assert.ErrorIs(t, err, ErrNoData)

	m, err := svc.GetByFrameNumber(ctx, "VIN-1")
	require.NoError(t, err)
	assert.Equal(t, "red", *m.Color)
	assert.Nil(t, m.DateArrivage)
}

func TestUpdateByFrameNumber_EmptyObject(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-1", "Color": "red"}`))
	require.NoError(t, err)

	assert.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{}`)))
	assert.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-1", []byte(`{"FrameNumber": "VIN-1"}`)))
	assert.ErrorIs(t, svc.UpdateByFrameNumber(ctx, "GHOST", []byte(`{}`)), ErrNotFound)

	m, err := svc.GetByFrameNumber(ctx, "VIN-1")
	require.NoError(t, err)
	assert.Equal(t, "red", *m.Color)
}

func TestUpdateByFrameNumber_TrimsDates(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-3"}`))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateByFrameNumber(ctx, "VIN-3", []byte(`{"DateArrivage": " 2024-03-15 ", "DateVenteClient": "25/12/23"}`)))

	m, err := svc.GetByFrameNumber(ctx, "VIN-3")
	require.NoError(t, err)
	assert.Equal(t, "15/03/24", *m.DateArrivage)
	assert.Equal(t, "25/12/23", *m.DateVenteClient)
}

func TestBulkInsert_ColumnLimits(t *testing.T) {
	svc, db := newMotorcycleService(t)
	ctx := context.Background()

	n, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-4", "DateArrivage": "2024-03-15 10:30:00"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, err := svc.GetByFrameNumber(ctx, "VIN-4")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15 10:30:00", *m.DateArrivage)

	_, err = svc.BulkInsert(ctx, []byte(`[{"FrameNumber": "VIN-5"}, {"FrameNumber": "VIN-6", "Sexe": "unspecified"}]`))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "record 1: Sexe must be at most 7 characters", vErr.Message)

	_, err = svc.BulkInsert(ctx, []byte(`{"Marque": "Dayun"}`))
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "record 0: FrameNumber is required", vErr.Message)

	assert.Equal(t, int64(1), countMotorcycles(t, db))
}

func TestUpdateByFrameNumber_NotFoundLeavesStorageUnchanged(t *testing.T) {
	svc, db := newMotorcycleService(t)
	ctx := context.Background()

	_, err := svc.BulkInsert(ctx, []byte(`{"FrameNumber": "VIN-1", "Color": "red"}`))
	require.NoError(t, err)

	err = svc.UpdateByFrameNumber(ctx, "GHOST", []byte(`{"Color": "blue"}`))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, int64(1), countMotorcycles(t, db))
	m, err := svc.GetByFrameNumber(ctx, "VIN-1")
	require.NoError(t, err)
	assert.Equal(t, "red", *m.Color)
}

func TestListAll(t *testing.T) {
	svc, _ := newMotorcycleService(t)
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.BulkInsert(ctx, []byte(`[{"FrameNumber": "B"}, {"FrameNumber": "A"}]`))
	require.NoError(t, err)

	all, err = svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].FrameNumber)
}
