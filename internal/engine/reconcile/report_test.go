package reconcile_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/engine/reconcile"
)

func TestReport_Empty(t *testing.T) {
	assert.Empty(t, reconcile.Report(nil, []string{"linux-64"}, true, "environment.yml"))
}

func TestReport_Golden(t *testing.T) {
	tests := []struct {
		name      string
		changes   []domain.ChangeRecord
		platforms []string
		relockAll bool
	}{
		{
			name:      "report_single_platform",
			platforms: []string{"linux-64"},
			changes: []domain.ChangeRecord{
				{Platform: "linux-64", Name: "numpy", Old: ptr("1.0"), New: ptr("1.1")},
			},
		},
		{
			name:      "report_multi_platform",
			platforms: []string{"linux-64", "osx-arm64", "win-64"},
			changes: []domain.ChangeRecord{
				{Platform: "linux-64", Name: "numpy", Old: ptr("1.0"), New: ptr("1.1")},
				{Platform: "linux-64", Name: "pandas", Old: nil, New: ptr("2.2.0")},
				{Platform: "win-64", Name: "numpy", Old: ptr("1.0"), New: ptr("1.1")},
				{Platform: "win-64", Name: "pywin32", Old: ptr("306"), New: nil},
			},
		},
		{
			name:      "report_relock_all",
			platforms: []string{"linux-64"},
			relockAll: true,
			changes: []domain.ChangeRecord{
				{Platform: "linux-64", Name: "libblas", Old: ptr("3.9.0"), New: ptr("3.9.1")},
				{Platform: "linux-64", Name: "numpy", Old: ptr("1.0"), New: ptr("1.1")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			out := reconcile.Report(tt.changes, tt.platforms, tt.relockAll, "environment.yml")
			g.Assert(t, tt.name, []byte(out))
		})
	}
}
