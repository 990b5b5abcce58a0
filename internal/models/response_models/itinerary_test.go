package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityUnmarshalLegacyString(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`"Walk the old town"`), &a))
	assert.Equal(t, "Walk the old town", a.Plain)
	assert.Nil(t, a.Detail)
}

func TestActivityUnmarshalStructured(t *testing.T) {
	var a Activity
	payload := `{"time":"9:00 AM","description":"Museum visit","estimated_cost":"$15","booking_info":"At the door","alternatives":"Guided tour"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &a))
	require.NotNil(t, a.Detail)
	assert.Equal(t, "9:00 AM", a.Detail.Time)
	assert.Equal(t, "Museum visit", a.Detail.Description)
	assert.Equal(t, "$15", a.Detail.EstimatedCost)
	assert.Equal(t, "At the door", a.Detail.BookingInfo)
	assert.Equal(t, "Guided tour", a.Detail.Alternatives)
}

func TestActivityUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, payload := range []string{`42`, `[1,2]`, `null`, `true`} {
		var a Activity
		assert.Error(t, json.Unmarshal([]byte(payload), &a), "payload %s", payload)
	}
}

func TestActivityMarshalMatchesVariant(t *testing.T) {
	plain, err := json.Marshal(Activity{Plain: "Street food crawl"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Street food crawl"`, string(plain))

	detail, err := json.Marshal(Activity{Detail: &ActivityDetail{Time: "Evening", Description: "Dinner"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"Evening","description":"Dinner"}`, string(detail))
}

func TestDayPlanMissingActivitiesStaysNil(t *testing.T) {
	var day DayPlan
	require.NoError(t, json.Unmarshal([]byte(`{"day":1,"title":"A"}`), &day))
	assert.Nil(t, day.Activities)

	require.NoError(t, json.Unmarshal([]byte(`{"day":1,"title":"A","activities":[]}`), &day))
	require.NotNil(t, day.Activities)
	assert.Empty(t, *day.Activities)
}
