package cv

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanEducationTruncatesInstitution(t *testing.T) {
	got := CleanEducation("Bachelor of Technology - ABC Institute of Engineering")
	assert.Equal(t, []string{"Bachelor of Technology"}, got)
}

func TestCleanEducation(t *testing.T) {
	section := `B.Tech in Computer Science, XYZ University
ABC College of Engineering
2018 - 2022
CGPA: 8.5
contact: jane@example.com
Higher Secondary (Plus Two) - GHSS Kochi
SSLC
b.tech in computer science
Member of coding club
85%`

	assert.Equal(t, []string{
		"B.Tech in Computer Science",
		"Higher Secondary (Plus Two)",
		"SSLC",
	}, CleanEducation(section))
}

func TestCleanEducationCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "B.Tech batch %d\n", i)
	}
	assert.Len(t, CleanEducation(b.String()), maxEducationEntries)
}

func TestCleanExperienceDropsCompanyOnlyLines(t *testing.T) {
	got := CleanExperience("ABC Pvt Ltd\nDeveloped REST APIs using Django")
	assert.Equal(t, []string{"Developed REST APIs using Django"}, got)
}

func TestCleanExperience(t *testing.T) {
	section := `XYZ Technologies Pvt Ltd
Software Engineer, XYZ Technologies
• Built payment service in Go
https://xyz.example.com
Go
Software engineer, xyz technologies`

	assert.Equal(t, []string{
		"Software Engineer, XYZ Technologies",
		"- Built payment service in Go",
	}, CleanExperience(section))
}

func TestCleanExperienceCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 70; i++ {
		fmt.Fprintf(&b, "- Shipped feature %d\n", i)
	}
	assert.Len(t, CleanExperience(b.String()), maxExperienceEntries)
}

func TestKeywordsMatchWholeTokens(t *testing.T) {
	assert.False(t, degreeKeywords.match("Member of coding club"))
	assert.True(t, degreeKeywords.match("B.E. (Mechanical)"))
	assert.True(t, degreeKeywords.match("Class XII, State Board"))
	assert.False(t, companySuffixes.match("Co-founded the robotics club"))
	assert.True(t, companySuffixes.match("Acme Co."))
}
