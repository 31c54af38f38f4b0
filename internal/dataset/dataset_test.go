package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
)

const header = "id,address,city,state,zip_code,monthly_rent,bedrooms," +
	"agent_name,agent_phone,agent_email,languages_spoken," +
	"section8_accepted,hud_approved,low_income_eligible,nearby_transit," +
	"utilities_included,pets_allowed,accessibility_features,income_limit_percent_ami"

func mustRead(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return ds
}

func TestRead_NormalizesFields(t *testing.T) {
	csv := header + "\n" +
		`1,123 Main St,Atlanta,GA,30303,750,2,Maria Garcia,+14045550101,maria@example.com,"English, Spanish",Yes,no,TRUE,1,No,Yes,Wheelchair ramp,60` + "\n" +
		`2,9 Oak St,Decatur,GA,30030,not-a-number,abc,A B,+1555,ab@example.com,English,No,No,No,No,No,No,None,`

	ds := mustRead(t, csv)
	require.Equal(t, 2, ds.Len())

	l1 := ds.Listings()[0]
	require.NotNil(t, l1.MonthlyRent)
	assert.Equal(t, 750.0, *l1.MonthlyRent)
	assert.Equal(t, 2, l1.Bedrooms)
	assert.True(t, l1.Section8Accepted)
	assert.False(t, l1.HUDApproved)
	assert.True(t, l1.LowIncomeEligible)
	assert.True(t, l1.NearbyTransit)
	assert.False(t, l1.UtilitiesIncluded)
	assert.True(t, l1.PetsAllowed)
	assert.True(t, l1.HasAccessibility())
	require.NotNil(t, l1.IncomeLimitAMI)
	assert.Equal(t, 60.0, *l1.IncomeLimitAMI)

	// unparsable rent is missing, never zero; unparsable bedrooms default 0
	l2 := ds.Listings()[1]
	assert.Nil(t, l2.MonthlyRent)
	assert.Equal(t, 0, l2.Bedrooms)
	assert.Nil(t, l2.IncomeLimitAMI)
	assert.False(t, l2.HasAccessibility())
}

func TestRead_MissingColumnFails(t *testing.T) {
	csv := "id,address,city\n1,123 Main St,Atlanta"
	_, err := dataset.Read(strings.NewReader(csv))
	require.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "monthly_rent")
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := dataset.Load("testdata/does-not-exist.csv")
	require.Error(t, err)
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"yes": true, "Yes": true, " YES ": true,
		"true": true, "True": true, "1": true, " 1 ": true,
		"no": false, "false": false, "0": false, "": false,
		"maybe": false, "null": false, "2": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, dataset.ParseBool(in), "input %q", in)
	}
}

func TestMetadataHelpers(t *testing.T) {
	csv := header + "\n" +
		`1,123 Main St,Atlanta,GA,30303,750,2,A,+1,a@example.com,"English, Spanish",No,No,No,No,No,No,None,` + "\n" +
		`2,9 Oak St,Decatur,GA,30030,600,1,B,+1,b@example.com,"Spanish, Korean",No,No,No,No,No,No,None,` + "\n" +
		`3,5 Elm St,Atlanta,GA,30312,,1,C,+1,c@example.com,English,No,No,No,No,No,No,None,`

	ds := mustRead(t, csv)

	assert.Equal(t, []string{"Atlanta", "Decatur"}, ds.Cities())
	assert.Equal(t, []string{"English", "Korean", "Spanish"}, ds.Languages())

	lo, hi := ds.PriceRange()
	assert.Equal(t, 600.0, lo)
	assert.Equal(t, 750.0, hi)

	l, err := ds.ByID(2)
	require.NoError(t, err)
	assert.Equal(t, "9 Oak St", l.Address)

	_, err = ds.ByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
