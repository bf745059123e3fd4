package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalJSON(t *testing.T) {
	bounded, err := json.Marshal(Bounded(-512.5))
	require.NoError(t, err)
	assert.Equal(t, "-512.5", string(bounded))

	unbounded, err := json.Marshal(Unbounded())
	require.NoError(t, err)
	assert.Equal(t, `"unbounded"`, string(unbounded))
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantUnbounded bool
		wantValue     float64
	}{
		{"plain number", "700", false, 700},
		{"negative number", "-300.25", false, -300.25},
		{"unbounded string", `"unbounded"`, true, 0},
		{"legacy positive sentinel", "999999", true, 0},
		{"legacy negative sentinel", "-999999", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.wantUnbounded, a.IsUnbounded())
			if !tt.wantUnbounded {
				assert.InDelta(t, tt.wantValue, a.Value(), 1e-9)
			}
		})
	}

	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &a))
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "unbounded", Unbounded().String())
	assert.Equal(t, "-500.00", Bounded(-500).String())
}

// The sentinel must never survive a round trip: a legacy document
// carrying 999999 re-serializes as the tagged form.
func TestAmountLegacySentinelNeverReemitted(t *testing.T) {
	var m Metrics
	require.NoError(t, json.Unmarshal([]byte(`{"max_gain":999999,"max_loss":-500,"breakeven":105,"probability":"35%"}`), &m))

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"max_gain":"unbounded"`)
	assert.NotContains(t, string(out), "999999")
}
