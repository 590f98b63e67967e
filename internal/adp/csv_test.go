package adp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffName,Team,POS,AVG\n" +
		"Ja'Marr Chase,CIN,WR,1.4\n" +
		"Bijan Robinson,ATL,RB,\n"

	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Name", "Team", "POS", "AVG", RankColumn}, rows[0].Keys())

	data, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Name":"Ja'Marr Chase","Team":"CIN","POS":"WR","AVG":1.4,"rank":1},
		{"Name":"Bijan Robinson","Team":"ATL","POS":"RB","AVG":null,"rank":2}
	]`, string(data))
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = ReadCSV(strings.NewReader("Name,ADP\n"))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestReadCSV_LongRecord(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Name,ADP\nA,1,extra\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadCSV_ShortRecordPadsNulls(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Name,ADP,Bye\nA,1.5\nB,2,7\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	data, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Name":"A","ADP":1.5,"Bye":null,"rank":1},
		{"Name":"B","ADP":2,"Bye":7,"rank":2}
	]`, string(data))
}

func TestReadCSV_NAMarkers(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Name,ADP,Bye\nA,N/A,7\nB,NaN,null\n"))
	require.NoError(t, err)

	data, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Name":"A","ADP":null,"Bye":7,"rank":1},
		{"Name":"B","ADP":null,"Bye":null,"rank":2}
	]`, string(data))
}

func TestReadCSV_DuplicateHeaders(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Name,ADP,ADP,ADP\nA,1,2,3\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Name", "ADP", "ADP.1", "ADP.2", RankColumn}, rows[0].Keys())

	first, _ := rows[0].Get("ADP")
	assert.Equal(t, "1", first.String())
}

func TestDedupeHeader(t *testing.T) {
	tests := []struct {
		in, want []string
	}{
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"a", "a"}, []string{"a", "a.1"}},
		{[]string{"a", "a", "a.1"}, []string{"a", "a.2", "a.1"}},
	}
	for _, tt := range tests {
		got := dedupeHeader(tt.in)
		assert.Equal(t, tt.want, got, "dedupeHeader(%v)", tt.in)
	}
}
