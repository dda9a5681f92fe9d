package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-technique-api/internal/metrics"
)

type RecorderTestSuite struct {
	suite.Suite
	recorder *metrics.Recorder
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
	s.recorder = metrics.New()
}

func (s *RecorderTestSuite) TestCounters() {
	s.recorder.TechniqueCreated()
	s.recorder.TechniqueCreated()
	s.recorder.TechniqueDeleted()
	s.recorder.TechniqueReset()
	s.recorder.EffectRemoved()

	expected := `
# HELP technique_api_techniques_created_total Total number of technique drafts created.
# TYPE technique_api_techniques_created_total counter
technique_api_techniques_created_total 2
# HELP technique_api_techniques_deleted_total Total number of technique drafts discarded.
# TYPE technique_api_techniques_deleted_total counter
technique_api_techniques_deleted_total 1
# HELP technique_api_techniques_reset_total Total number of technique drafts reset to empty.
# TYPE technique_api_techniques_reset_total counter
technique_api_techniques_reset_total 1
# HELP technique_api_effects_removed_total Effect instances removed.
# TYPE technique_api_effects_removed_total counter
technique_api_effects_removed_total 1
`
	err := testutil.GatherAndCompare(s.recorder.Registry(), strings.NewReader(expected),
		"technique_api_techniques_created_total",
		"technique_api_techniques_deleted_total",
		"technique_api_techniques_reset_total",
		"technique_api_effects_removed_total",
	)
	s.NoError(err)
}

func (s *RecorderTestSuite) TestLabelledCounters() {
	s.recorder.LevelChanged("Nivel 1")
	s.recorder.LevelChanged("Nivel 1")
	s.recorder.LevelChanged("Apoyo")
	s.recorder.ForceChanged("")
	s.recorder.ForceChanged("Caos")
	s.recorder.EffectAdded("Efectos ofensivos")
	s.recorder.EffectRejected("incompatible_force")
	s.recorder.Exported(true)
	s.recorder.Exported(false)
	s.recorder.Exported(false)

	expected := `
# HELP technique_api_level_changes_total Power level changes, partitioned by the new level.
# TYPE technique_api_level_changes_total counter
technique_api_level_changes_total{level="Apoyo"} 1
technique_api_level_changes_total{level="Nivel 1"} 2
# HELP technique_api_force_changes_total Dominant force changes, partitioned by the new force.
# TYPE technique_api_force_changes_total counter
technique_api_force_changes_total{force="Caos"} 1
technique_api_force_changes_total{force="none"} 1
# HELP technique_api_exports_total Text exports, partitioned by result.
# TYPE technique_api_exports_total counter
technique_api_exports_total{result="failure"} 2
technique_api_exports_total{result="success"} 1
`
	err := testutil.GatherAndCompare(s.recorder.Registry(), strings.NewReader(expected),
		"technique_api_level_changes_total",
		"technique_api_force_changes_total",
		"technique_api_exports_total",
	)
	s.NoError(err)

	count, err := testutil.GatherAndCount(s.recorder.Registry(),
		"technique_api_effects_added_total",
		"technique_api_effects_rejected_total",
	)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *RecorderTestSuite) TestHandler() {
	s.recorder.TechniqueCreated()

	srv := httptest.NewServer(s.recorder.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "technique_api_techniques_created_total 1")
	s.Contains(string(body), "go_goroutines")
}
