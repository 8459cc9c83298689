package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danielpatrickdp/shotsim/internal/cache"
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/fielding"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

var startTime = time.Now()

const service = "shotsim"

// #region types

// ShotRequest is field.Shot with an optional launch point. A missing launch
// uses field.DefaultLaunch; an explicit {0,0,0} launches from ground level.
type ShotRequest struct {
	Speed     units.MetersPerSecond `json:"speed"`
	Azimuth   units.Degrees         `json:"azimuth"`
	Elevation units.Degrees         `json:"elevation"`
	Launch    *units.Vec3           `json:"launch"`
	Spin      units.RPM             `json:"spin"`
}

// SimulateRequest is the body of POST /simulate. Empty ground fields use the
// standard preset on the default ground.
type SimulateRequest struct {
	Shot           ShotRequest     `json:"shot"`
	Preset         string          `json:"preset"`
	Friction       string          `json:"friction"`
	BoundaryRadius units.Meters    `json:"boundary_radius"`
	Fielders       []field.Fielder `json:"fielders"`
	Batsmen        []field.Batsman `json:"batsmen"`
	Options        sim.Options     `json:"options"`
	IncludeSamples bool            `json:"include_samples"`
}

// SimulateResponse is the verdict for one shot.
type SimulateResponse struct {
	Key          string                      `json:"key"`
	Call         string                      `json:"call"`
	Outcome      outcome.ShotOutcome         `json:"outcome"`
	Interception fielding.InterceptionResult `json:"interception"`
	Catch        *fielding.Catch             `json:"catch,omitempty"`
	Summary      trajectory.Summary          `json:"summary"`
	Thresholds   outcome.Thresholds          `json:"thresholds"`
	Samples      []trajectory.Sample         `json:"samples,omitempty"`
}

// #endregion types

// #region handlers

// HealthCheck returns server health and cache stats.
func HealthCheck(memo *cache.Memo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": service,
			"uptime":  time.Since(startTime).String(),
			"cache":   memo.Stats(),
		})
	}
}

// ListPresets returns every named field setting with its ground and roster.
func ListPresets(c *gin.Context) {
	out := make([]gin.H, 0)
	for _, name := range field.PresetNames() {
		fc, fielders, err := field.Preset(name)
		if err != nil {
			continue
		}
		out = append(out, gin.H{"name": name, "field": fc, "fielders": fielders})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// Simulate runs one shot through the memoized simulator.
func Simulate(memo *cache.Memo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, key, err := memo.Simulate(in)
		if err != nil {
			writeSimError(c, err)
			return
		}

		c.Header("X-Result-Key", key.String())
		c.JSON(http.StatusOK, newResponse(key, res, req.IncludeSamples))
	}
}

// GetResult returns a cached result by key, samples included.
func GetResult(memo *cache.Memo) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := uuid.Parse(c.Param("key"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result key"})
			return
		}
		res, ok := memo.Lookup(key)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		c.JSON(http.StatusOK, newResponse(key, res, true))
	}
}

// #endregion handlers

// #region helpers

func (r SimulateRequest) toInput() (sim.Input, error) {
	preset := strings.TrimSpace(r.Preset)
	if preset == "" {
		preset = "standard"
	}
	fc, fielders, err := field.Preset(preset)
	if err != nil {
		return sim.Input{}, err
	}
	if strings.TrimSpace(r.Friction) != "" {
		fr, err := field.ParseFriction(r.Friction)
		if err != nil {
			return sim.Input{}, err
		}
		fc.Friction = fr
	}
	if r.BoundaryRadius > 0 {
		fc.BoundaryRadius = r.BoundaryRadius
	}
	if r.Fielders != nil {
		fielders = r.Fielders
	}
	batsmen := r.Batsmen
	if batsmen == nil {
		batsmen = field.DefaultBatsmen()
	}

	shot := field.Shot{
		Speed:     r.Shot.Speed,
		Azimuth:   r.Shot.Azimuth,
		Elevation: r.Shot.Elevation,
		Launch:    field.DefaultLaunch(),
		Spin:      r.Shot.Spin,
	}
	if r.Shot.Launch != nil {
		shot.Launch = *r.Shot.Launch
	}
	return sim.Input{Shot: shot, Field: fc, Fielders: fielders, Batsmen: batsmen, Options: r.Options}, nil
}

func newResponse(key uuid.UUID, res *sim.Result, withSamples bool) SimulateResponse {
	out := SimulateResponse{
		Key:          key.String(),
		Call:         res.Outcome.String(),
		Outcome:      res.Outcome,
		Interception: res.Interception,
		Catch:        res.Catch,
		Summary:      res.Summary,
		Thresholds:   res.Thresholds,
	}
	if withSamples {
		out.Samples = res.Samples
	}
	return out
}

func writeSimError(c *gin.Context, err error) {
	var ve *sim.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": ve.Field})
	case errors.Is(err, sim.ErrSimulationFailed):
		log.Printf("[SIM] %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("[SIM] unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// #endregion helpers
