package jsonrepair_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudaia/internal/jsonrepair"
)

func TestRepair_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid json untouched", `{"a":"b"}`, `{"a":"b"}`},
		{"legal escapes untouched", `{"a":"x\n\t\"q\" \\ \/ é \b\f\r"}`, `{"a":"x\n\t\"q\" \\ \/ é \b\f\r"}`},
		{"latex command doubled", `{"a":"x\Omega y"}`, `{"a":"x\\Omega y"}`},
		{"thin space doubled", `{"v":"$5\,V$"}`, `{"v":"$5\\,V$"}`},
		{"non-ascii after backslash", `{"v":"10\Ω"}`, `{"v":"10\\Ω"}`},
		{"backslash outside strings kept", `{"a":1}\x`, `{"a":1}\x`},
		{"trailing backslash in unterminated string", `{"a":"x\`, `{"a":"x\\`},
		{"several fixes in one value", `{"f":"$$V_{GS} \cdot \sqrt{2}$$"}`, `{"f":"$$V_{GS} \\cdot \\sqrt{2}$$"}`},
		{"keys are strings too", `{"\k":"v"}`, `{"\\k":"v"}`},
		{"escaped backslash is a legal escape", `{"a":"a\\b"}`, `{"a":"a\\b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonrepair.Repair(tt.in))
		})
	}
}

func TestRepair_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a":"x\Omega y"}`,
		`{"a":"already \\ escaped","b":["\n","A"]}`,
		`{"formula":"$$R = \frac{V}{I}$$","example":"$10\,\Omega$"}`,
	}

	for _, in := range inputs {
		once := jsonrepair.Repair(in)
		assert.True(t, json.Valid([]byte(once)), "repaired output must be valid: %s", once)
		assert.Equal(t, once, jsonrepair.Repair(once))
	}
}

func TestRepair_PreservesLiteralBackslash(t *testing.T) {
	repaired := jsonrepair.Repair(`{"a": "x\Omega y"}`)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(repaired), &out))
	assert.Equal(t, `x\Omega y`, out["a"])
}

func TestExtract(t *testing.T) {
	span, err := jsonrepair.Extract("Here you go:\n{\"a\":{\"b\":1}}\nThanks! {not json}")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":{\"b\":1}}\nThanks! {not json}", span, "span is greedy up to the last brace")

	_, err = jsonrepair.Extract("no braces here")
	assert.ErrorIs(t, err, jsonrepair.ErrNoJSONFound)

	_, err = jsonrepair.Extract("} backwards {")
	assert.ErrorIs(t, err, jsonrepair.ErrNoJSONFound)
}

func TestDecode_WellFormedMatchesDirectParse(t *testing.T) {
	raw := `{"summary":"ok","items":[1,2,3],"nested":{"k":"v\n"}}`

	var direct, decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &direct))
	require.NoError(t, jsonrepair.Decode(raw, &decoded))

	assert.Equal(t, direct, decoded)
	assert.Equal(t, raw, jsonrepair.Repair(raw))
}

func TestDecode_ProseWrapped(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}
	err := jsonrepair.Decode("Claro! Segue:\n```json\n{\"summary\":\"Lei de Ohm: $V = R\\cdot I$\"}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, `Lei de Ohm: $V = R\cdot I$`, out.Summary)
}

func TestDecode_NoJSON(t *testing.T) {
	var out map[string]any
	err := jsonrepair.Decode("the model refused to answer", &out)

	assert.ErrorIs(t, err, jsonrepair.ErrNoJSONFound)
	assert.NotErrorIs(t, err, jsonrepair.ErrUnrepairable)
}

func TestDecode_Unrepairable(t *testing.T) {
	var out map[string]any
	err := jsonrepair.Decode(`{"a": "x", "b": }`, &out)

	assert.ErrorIs(t, err, jsonrepair.ErrUnrepairable)
}

func TestParse_SchemaMismatchIsNotRepaired(t *testing.T) {
	var out struct {
		ConceptMap string `json:"conceptMap"`
	}
	err := jsonrepair.Parse(`{"conceptMap":{"root":["a"]}}`, &out)

	assert.ErrorIs(t, err, jsonrepair.ErrSchemaMismatch)
	assert.NotErrorIs(t, err, jsonrepair.ErrUnrepairable)
}

func TestParse_RepairedButMismatched(t *testing.T) {
	var out struct {
		Count int `json:"count"`
	}
	err := jsonrepair.Parse(`{"note":"x\Omega","count":"three"}`, &out)

	assert.ErrorIs(t, err, jsonrepair.ErrSchemaMismatch)
}
