package fba

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	catalog := DefaultCatalog()
	results := []ProductionResult{
		{TargetID: "octanoic_acid", Status: StatusOptimal, Rate: 5, MassRate: 0.72105},
		{TargetID: "hexanoic_acid", Status: StatusFailed, Err: errors.New("pool missing")},
	}

	rs := Aggregate(catalog, results)
	require.Len(t, rs.Records, 2)

	assert.Equal(t, "octanoic_acid", rs.Records[0].TargetID)
	assert.Equal(t, "Octanoyl-CoA", rs.Records[0].DisplayName)
	assert.Equal(t, "optimal", rs.Records[0].Status)
	assert.Equal(t, 5.0, rs.Records[0].Rate)
	assert.Empty(t, rs.Records[0].Error)

	assert.Equal(t, "failed", rs.Records[1].Status)
	assert.Equal(t, "pool missing", rs.Records[1].Error)
}

func TestAggregateScreen(t *testing.T) {
	catalog := DefaultCatalog()
	baseline := ProductionResult{TargetID: "octanoic_acid", Status: StatusOptimal, Rate: 5}
	results := []KnockoutResult{
		{
			Candidate:        ReactionKnockout("ACALD"),
			ProductionResult: ProductionResult{TargetID: "octanoic_acid", Status: StatusOptimal, Rate: 5},
			Delta:            0,
			DeltaDefined:     true,
		},
		{
			Candidate:        GeneKnockout("b1288"),
			ProductionResult: ProductionResult{TargetID: "octanoic_acid", Status: StatusOptimal, Rate: 0},
			Delta:            -5,
			DeltaDefined:     true,
			Improvement:      -100,
		},
	}

	rs := AggregateScreen(catalog, baseline, results)
	require.Len(t, rs.Records, 3)

	// baseline row first, with no knockout marker
	assert.Empty(t, rs.Records[0].Knockout)
	assert.Equal(t, 5.0, rs.Records[0].Rate)

	assert.Equal(t, "ACALD", rs.Records[1].Knockout)
	assert.Equal(t, "reaction", rs.Records[1].KnockoutKind)
	assert.True(t, rs.Records[1].DeltaDefined)

	assert.Equal(t, "b1288", rs.Records[2].Knockout)
	assert.Equal(t, "gene", rs.Records[2].KnockoutKind)
	assert.Equal(t, -5.0, rs.Records[2].Delta)
	assert.Equal(t, -100.0, rs.Records[2].Improvement)
}
