package graph

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semverse/report"
	"github.com/c360studio/semverse/vocabulary/semverse"
)

func sampleReport() *report.Report {
	id := report.UniverseID(0, "chain")
	return &report.Report{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Depth:       1,
		Probes:      4,
		Universes: []report.Summary{
			{ID: id, Name: "chain", Entropy: 7, Status: semverse.StatusConformant, Stratum: report.StratumID(0, true)},
		},
		Strata: []report.StratumSummary{
			{ID: report.StratumID(0, true), Overflow: true, Members: []string{id}},
		},
	}
}

func TestPayloads(t *testing.T) {
	rep := sampleReport()
	payloads := Payloads(rep)
	require.Len(t, payloads, 2)

	universe := payloads[0]
	assert.Equal(t, rep.Universes[0].ID, universe.EntityID())
	assert.Equal(t, ReportType, universe.Schema())
	assert.Equal(t, rep.GeneratedAt, universe.UpdatedAt)
	require.NoError(t, universe.Validate())

	for _, tr := range universe.Triples() {
		assert.Equal(t, Source, tr.Source)
		assert.Equal(t, rep.GeneratedAt, tr.Timestamp)
		assert.Equal(t, 1.0, tr.Confidence)
	}

	assert.Equal(t, report.StratumID(0, true), payloads[1].EntityID())
	require.NoError(t, payloads[1].Validate())
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload *ReportPayload
		wantErr bool
	}{
		{name: "missing id", payload: &ReportPayload{}, wantErr: true},
		{
			name: "foreign subject",
			payload: &ReportPayload{
				EntityID_:  "semverse.stratum.overflow",
				TripleData: []message.Triple{{Subject: "semverse.stratum.le-4", Predicate: semverse.StratumSize, Object: 1}},
			},
			wantErr: true,
		},
		{
			name: "valid",
			payload: &ReportPayload{
				EntityID_:  "semverse.stratum.overflow",
				TripleData: []message.Triple{{Subject: "semverse.stratum.overflow", Predicate: semverse.StratumSize, Object: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayloadJSON(t *testing.T) {
	p := Payloads(sampleReport())[1]

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"semverse.stratum.overflow"`)

	var decoded ReportPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p.EntityID(), decoded.EntityID())
	assert.Len(t, decoded.Triples(), len(p.Triples()))
}
