package models

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &HostProfile{}, &Category{}, &Event{}, &Ticket{}, &SocialMedia{}))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCategorySlugDerivation(t *testing.T) {
	db := newTestDB(t)

	category := Category{Name: "Performing & Visual Arts"}
	require.NoError(t, db.Create(&category).Error)
	assert.Equal(t, "performing-and-visual-arts", category.Slug)

	// Renaming changes the slug on the next save.
	category.Name = "Technology"
	require.NoError(t, db.Save(&category).Error)
	assert.Equal(t, "technology", category.Slug)
}

func TestEventSlugIdempotentAcrossSaves(t *testing.T) {
	db := newTestDB(t)

	event := Event{
		Title:     "Bridging the gap between Finance and Technology",
		StartDate: date(2026, 10, 30),
		EndDate:   date(2026, 11, 1),
		StartTime: "12:00:00",
		EndTime:   "06:00:00",
		Location:  "Lagos",
	}
	require.NoError(t, db.Create(&event).Error)
	first := event.Slug
	assert.Equal(t, "bridging-the-gap-between-finance-and-technology", first)

	require.NoError(t, db.Save(&event).Error)
	assert.Equal(t, first, event.Slug)
}

func TestEventValidateDates(t *testing.T) {
	event := Event{
		StartDate: date(2026, 10, 30),
		EndDate:   date(2026, 10, 29),
	}
	assert.ErrorIs(t, event.Validate(), ErrEndBeforeStart)

	event.EndDate = event.StartDate
	assert.NoError(t, event.Validate())

	event.EndDate = date(2026, 11, 1)
	assert.NoError(t, event.Validate())
}

func TestValidCategoryName(t *testing.T) {
	for _, name := range EventCategories {
		assert.True(t, ValidCategoryName(name), name)
	}
	assert.False(t, ValidCategoryName("Gaming"))
	assert.False(t, ValidCategoryName("technology"))
	assert.False(t, ValidCategoryName(""))
}

func TestHostProfileUniquePerUser(t *testing.T) {
	db := newTestDB(t)

	user := User{Email: "host@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	first := HostProfile{UserID: user.ID, CompanyName: "Acme Events"}
	require.NoError(t, db.Create(&first).Error)

	second := HostProfile{UserID: user.ID, CompanyName: "Other Co"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserEmailUnique(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&User{Email: "a@example.com", Password: "x"}).Error)
	err := db.Create(&User{Email: "a@example.com", Password: "y"}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
