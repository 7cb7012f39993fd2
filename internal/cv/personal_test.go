package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personalResume = `JANE DOE
PERSONAL DETAILS
Address Eriyattuparambil (H) Pandikkad
Locality Malappuram, Kerala
Gender Female
Nationality India
EDUCATION
B.Tech in CSE`

func TestPersonalBlockStopsAtNextSection(t *testing.T) {
	block := personalBlock(personalResume)
	assert.Equal(t, []string{
		"PERSONAL DETAILS",
		"Address Eriyattuparambil (H) Pandikkad",
		"Locality Malappuram, Kerala",
		"Gender Female",
		"Nationality India",
	}, block)

	block = personalBlock("Personal Information\nGender: M\nHobbies\nGender: F")
	assert.Equal(t, []string{"Personal Information", "Gender: M"}, block)

	assert.Nil(t, personalBlock("no personal block"))
}

func TestPersonalBlockWindowIsRuneSafe(t *testing.T) {
	text := "PERSONAL DETAILS\n" + strings.Repeat("é", 700)
	block := personalBlock(text)
	require.Len(t, block, 2)
	assert.True(t, strings.HasPrefix(block[1], "é"))
}

func TestBlockValue(t *testing.T) {
	block := personalBlock(personalResume)
	assert.Equal(t, ptr("Eriyattuparambil (H) Pandikkad"), blockValue(block, "Address"))
	assert.Equal(t, ptr("Malappuram, Kerala"), blockValue(block, "Locality"))
	assert.Equal(t, ptr("India"), blockValue(block, "Nationality"))
}

func TestExtractGender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{"female is not read as male", "Gender: Female", ptr("Female")},
		{"male", "GENDER - male", ptr("Male")},
		{"abbreviation f", "Gender: F", ptr("Female")},
		{"abbreviation m", "Gender: M", ptr("Male")},
		{"other", "Gender: Other", ptr("Other")},
		{"unrecognized", "Gender: prefer not to say", nil},
		{"personal block", personalResume, ptr("Female")},
		{"absent", "Jane Doe\nSkills: Go", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractGender(tt.input))
		})
	}
}

func TestExtractNationality(t *testing.T) {
	assert.Equal(t, ptr("India"), ExtractNationality(personalResume))
	assert.Nil(t, ExtractNationality("Jane Doe"))
}

func TestExtractAddress(t *testing.T) {
	assert.Equal(t, ptr("Eriyattuparambil (H) Pandikkad"), ExtractAddress(personalResume))
	assert.Equal(t, ptr("Malappuram, Kerala"), ExtractAddress("Locality: Malappuram,\tKerala"))
	assert.Equal(t, ptr("Kochi"), ExtractAddress("Location - Kochi"))
	assert.Nil(t, ExtractAddress("Jane Doe"))
}

func TestExtractAddressNeedsLineLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{"email address label", "Jane\nEmail Address: jane@x.com", nil},
		{"label inside a bullet", "SKILLS\n- IP address management", nil},
		{"email value is skipped", "Address: jane@x.com\nLocation: Kochi", ptr("Kochi")},
		{"bulleted label", "• Address: 12 MG Road, Kochi", ptr("12 MG Road, Kochi")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractAddress(tt.input))
		})
	}
}
