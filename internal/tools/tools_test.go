package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherReport(t *testing.T) {
	cases := []struct {
		city string
		want string
	}{
		{"Tokyo", "The weather in Tokyo is sunny"},
		{"London", "The weather in London is rainy"},
		{"paris", "The weather in paris is partly cloudy"},
		{"Atlantis", "The weather in Atlantis is sunny"},
	}

	for _, tc := range cases {
		if got := WeatherReport(tc.city); got != tc.want {
			t.Errorf("WeatherReport(%q) = %q, want %q", tc.city, got, tc.want)
		}
	}
}

func TestAvailableFlights(t *testing.T) {
	flights := AvailableFlights("New York", "Los Angeles", "2023-05-15")
	require.Len(t, flights, 3)

	assert.Equal(t, "AA123", flights[0].Number)
	assert.Equal(t, "DL456", flights[1].Number)
	assert.Equal(t, "UA789", flights[2].Number)
	assert.Equal(t, "279", flights[2].Price.StringFixed(0))
}

func TestCheckRefund(t *testing.T) {
	eligible, ok := CheckRefund("ABC123")
	require.True(t, ok)
	assert.True(t, eligible.Eligible)
	assert.Equal(t, "250", eligible.Amount.StringFixed(0))

	denied, ok := CheckRefund("DEF456")
	require.True(t, ok)
	assert.False(t, denied.Eligible)
	assert.Equal(t, "Non-refundable fare", denied.Reason)

	_, ok = CheckRefund("ZZZ000")
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		matched bool
	}{
		{"2023-05-15", "2023-05-15", true},
		{"05/20/2023", "2023-05-20", true},
		{"May 20, 2023", "2023-05-20", true},
		{"not a date", "not a date", false},
	}

	for _, tc := range cases {
		got, matched := NormalizeDate(tc.input)
		if got != tc.want || matched != tc.matched {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tc.input, got, matched, tc.want, tc.matched)
		}
	}
}

func TestCountWords(t *testing.T) {
	stats := CountWords("a quick brown fox")
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 17, stats.Characters)

	empty := CountWords("")
	assert.Zero(t, empty.Words)
	assert.Zero(t, empty.Characters)
}

func TestSearchDocuments(t *testing.T) {
	hits := SearchDocuments("how do I get a refund?")
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0], "efund")

	assert.Empty(t, SearchDocuments("unrelated query"))
}

func TestTutorTopics(t *testing.T) {
	topics, ok := TutorTopics("Math")
	require.True(t, ok)
	assert.Contains(t, topics, "algebra")

	_, ok = TutorTopics("chemistry")
	assert.False(t, ok)
}

func TestPlanFeatures(t *testing.T) {
	pro := PlanFeatures("Pro")
	free := PlanFeatures("Free")

	assert.Greater(t, len(pro), len(free))
	assert.Contains(t, pro, "Priority support")
	assert.Contains(t, free, "Community support")
}

func TestUserDirectory(t *testing.T) {
	dir := DefaultUserDirectory()

	active := dir.Active()
	assert.Equal(t, "user123", active.UID)
	assert.Equal(t, "Pro", active.Tier())
	assert.Len(t, active.Purchases, 2)

	require.NoError(t, dir.SetActive("user456"))
	free := dir.Active()
	assert.Equal(t, "Free", free.Tier())
	assert.Empty(t, free.Purchases)

	assert.Error(t, dir.SetActive("ghost"))
}

func TestUserProfileGreeting(t *testing.T) {
	pro := UserProfile{UID: "u1", IsProUser: true}
	free := UserProfile{UID: "u2"}

	assert.Contains(t, pro.Greeting(), "premium")
	assert.Contains(t, free.Greeting(), "upgrading")
}
