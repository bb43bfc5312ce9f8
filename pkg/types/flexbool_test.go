package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`null`, false},
		{`1.0`, true},
	}

	for _, tc := range cases {
		var f FlexBool
		require.NoError(t, json.Unmarshal([]byte(tc.input), &f), "input %s", tc.input)
		assert.Equal(t, tc.want, f.Bool(), "input %s", tc.input)
	}
}

func TestFlexBool_UnmarshalRejectsGarbage(t *testing.T) {
	var f FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &f))
}

func TestFlexBool_MarshalAsPlainBool(t *testing.T) {
	data, err := json.Marshal(struct {
		Flag FlexBool `json:"flag"`
	}{Flag: true})

	require.NoError(t, err)
	assert.JSONEq(t, `{"flag":true}`, string(data))
}
