package rebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/pkg/config"
)

func affectedIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	return ids
}

func TestDecide(t *testing.T) {
	cfg := config.DefaultPipelineConfig()

	tests := []struct {
		name        string
		affected    int
		churn       int
		nodeCount   int
		wantRebuild bool
		wantType    rebuildstatus.RebuildType
	}{
		{
			name: "nothing unapplied",
		},
		{
			name:        "small change in large campaign goes partial",
			affected:    3,
			churn:       2,
			nodeCount:   100,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypePartial,
		},
		{
			name:        "impact threshold forces full",
			affected:    30,
			churn:       10,
			nodeCount:   1000,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypeFull,
		},
		{
			name:        "churn alone can cross the threshold",
			affected:    10,
			churn:       40,
			nodeCount:   1000,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypeFull,
		},
		{
			name:        "affected fraction forces full in small campaigns",
			affected:    5,
			churn:       0,
			nodeCount:   10,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypeFull,
		},
		{
			name:        "fraction check skipped on empty graph",
			affected:    2,
			churn:       0,
			nodeCount:   0,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypePartial,
		},
		{
			name:        "churn without affected entities still rebuilds",
			affected:    0,
			churn:       4,
			nodeCount:   100,
			wantRebuild: true,
			wantType:    rebuildstatus.RebuildTypePartial,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(affectedIDs(tt.affected), tt.churn, tt.nodeCount, cfg)
			assert.Equal(t, tt.wantRebuild, d.ShouldRebuild)
			if tt.wantRebuild {
				assert.Equal(t, tt.wantType, d.Type)
			}
		})
	}
}

func TestDecideImpactArithmetic(t *testing.T) {
	cfg := config.DefaultPipelineConfig()

	d := Decide(affectedIDs(4), 6, 100, cfg)
	assert.InDelta(t, 4+0.5*6, d.CumulativeImpact, 1e-9)
	assert.Len(t, d.AffectedEntityIDs, 4)
}
