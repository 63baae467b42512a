package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		typ       Type
		title     string
		seriesKey []string
		points    int
		slices    int
	}{
		{Bar, "User Growth Analytics", []string{"users"}, 12, 0},
		{Line, "Revenue & Growth Trends", []string{"revenue", "growth"}, 12, 0},
		{Pie, "User Status Distribution", nil, 0, 3},
		{Area, "Market Share Progression", []string{"marketShare"}, 12, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			c, err := Build(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.title, c.Title)
			assert.Len(t, c.Points, tt.points)
			assert.Len(t, c.Slices, tt.slices)

			var keys []string
			for _, s := range c.Series {
				keys = append(keys, s.Key)
			}
			assert.Equal(t, tt.seriesKey, keys)
		})
	}
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := Build("radar")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestStatusDistribution_Percent(t *testing.T) {
	s := StatusDistribution()
	require.Len(t, s, 3)
	// 3100/4100, 800/4100, 200/4100
	assert.Equal(t, 76.0, s[0].Percent)
	assert.Equal(t, 20.0, s[1].Percent)
	assert.Equal(t, 5.0, s[2].Percent)
}

func TestKinds_Order(t *testing.T) {
	var ids []Type
	for _, k := range Kinds() {
		ids = append(ids, k.ID)
	}
	assert.Equal(t, []Type{Bar, Line, Pie, Area}, ids)
}

func TestKeyMetrics(t *testing.T) {
	m := KeyMetrics()
	require.Len(t, m, 4)
	assert.Equal(t, "3,100", m[0].Display)
	assert.Equal(t, "$125,000", m[1].Display)
	assert.Equal(t, "52%", m[2].Display)
	assert.Equal(t, "52%", m[3].Display)
}

func TestSummaries(t *testing.T) {
	s := Summaries()
	require.Len(t, s, 3)
	assert.Contains(t, s[0].Text, "from 1,200 to 3,100 users")
	assert.Contains(t, s[1].Text, "from $45,000 to $125,000")
}

func TestMonthly_ReturnsCopy(t *testing.T) {
	m := Monthly()
	m[0].Users = 0
	assert.Equal(t, 1200, Monthly()[0].Users)
}
