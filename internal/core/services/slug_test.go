package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Teak King Bed", "teak-king-bed"},
		{"  Sheesham   Dining Set  ", "sheesham-dining-set"},
		{"L-Shaped Sofa (3+2)", "l-shaped-sofa-3-2"},
		{"Crème Brûlée Side-Table", "creme-brulee-side-table"},
		{"100% Solid Wood!!!", "100-solid-wood"},
		{"ÆØ ß", "aeo-ss"},
		{"Smørrebrød Straße Bench", "smorrebrod-strasse-bench"},
		{"Łódź Œuvre Stool", "lodz-oeuvre-stool"},
		{"Þór Ðesk", "thor-desk"},
		{"---", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	names := []string{
		"Teak King Bed",
		"MiXeD CaSe, With: Punctuation?",
		"  spaces\tand\ttabs  ",
		"Ñandú Rocking Chair",
		"Ærø Straße Chest",
		"a--b__c..d",
		"Queen Bed / Storage & Drawers",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			once := Slugify(name)
			assert.Equal(t, once, Slugify(once))
		})
	}
}
