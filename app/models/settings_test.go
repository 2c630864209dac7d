package models_test

import (
	"testing"

	"github.com/Rage-Op/CKA-Backend/app/models"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyFeeForClass(t *testing.T) {
	settings := &models.Settings{
		MonthlyPG:      800,
		MonthlyKG:      900,
		MonthlyNursery: 850,
		Monthly1:       1000,
		Monthly2:       1100,
		Monthly3:       1200,
		Monthly4:       1300,
		Monthly5:       1400,
		Monthly6:       1500,
	}

	cases := map[string]int64{
		"P.G.":    800,
		"K.G.":    900,
		"nursery": 850,
		"1":       1000,
		"3":       1200,
		"6":       1500,
	}
	for class, want := range cases {
		got, err := settings.MonthlyFeeForClass(class)
		assert.NoError(t, err, class)
		assert.Equal(t, want, got, class)
	}
}

func TestMonthlyFeeForUnknownClass(t *testing.T) {
	settings := &models.Settings{}
	_, err := settings.MonthlyFeeForClass("7")
	assert.Error(t, err)
}
