package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIsDeterministic(t *testing.T) {
	first := Build("Battery", "5000mAh", ActionMoreDetails)
	second := Build("Battery", "5000mAh", ActionMoreDetails)
	assert.Equal(t, first, second)

	assert.Equal(t, Explain("Battery", "5000mAh"), Build("Battery", "5000mAh", ""))
}

func TestBuildEmbedsSubjectVerbatim(t *testing.T) {
	out := Explain("Battery & Charging", "Non-removable 5000mAh Li-Ion battery")
	assert.Contains(t, out, "Battery & Charging")
	assert.Contains(t, out, "Non-removable 5000mAh Li-Ion battery")
	assert.Contains(t, out, "Explain Battery & Charging: Non-removable 5000mAh Li-Ion battery")
}

func TestBuildFollowUpClause(t *testing.T) {
	without := Build("Display", "120Hz AMOLED", "")
	assert.NotContains(t, without, "Please provide a")

	with := Build("Display", "120Hz AMOLED", ActionMoreDetails)
	assert.Contains(t, with, "Please provide a More Details explanation.")

	// Everything but the follow-up clause is shared.
	assert.Contains(t, with, "Explain Display: 120Hz AMOLED")
}

func TestBuildFormatClauseAlwaysPresent(t *testing.T) {
	for _, action := range append(Actions(), "") {
		out := Build("Camera", "200MP wide sensor", action)
		require.Contains(t, out, formatClause, "action %q", action)
		require.True(t, strings.HasPrefix(out, preamble), "action %q", action)
	}
}

func TestFollowUpActionValid(t *testing.T) {
	for _, action := range Actions() {
		assert.True(t, action.Valid(), "%q", action)
	}
	assert.False(t, FollowUpAction("").Valid())
	assert.False(t, FollowUpAction("Translate").Valid())
}
