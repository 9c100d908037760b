// README: Toll handlers for base fee, peak premium and combined quotes.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tollcalc/internal/modules/toll"
	"tollcalc/internal/modules/vehicle"
)

type TollHandler struct {
	toll *toll.Service
}

func NewTollHandler(svc *toll.Service) *TollHandler {
	return &TollHandler{toll: svc}
}

type baseTollResp struct {
	Kind     vehicle.Kind `json:"kind"`
	Fee      string       `json:"fee"`
	Currency string       `json:"currency"`
}

type premiumResp struct {
	Premium  string        `json:"premium"`
	TimeBand toll.TimeBand `json:"time_band"`
	At       time.Time     `json:"at"`
	Inbound  bool          `json:"inbound"`
}

type quoteReq struct {
	Vehicle *vehicle.Spec `json:"vehicle"`
	At      string        `json:"at"`
	Inbound bool          `json:"inbound"`
}

type quoteResp struct {
	baseTollResp
	premiumResp
}

type premiumQuery struct {
	At      string `form:"at"`
	Inbound bool   `form:"inbound"`
}

func (h *TollHandler) BaseToll(c *gin.Context) {
	var spec vehicle.Spec
	if err := c.ShouldBindJSON(&spec); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	v := spec.Vehicle()
	fee, err := h.toll.BaseToll(c.Request.Context(), v)
	if err != nil {
		writeTollError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, baseTollResp{Kind: v.Kind(), Fee: fee.String(), Currency: fee.Currency})
}

func (h *TollHandler) Premium(c *gin.Context) {
	var q premiumQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid query")
		return
	}
	at, err := parseAt(q.At)
	if err != nil {
		writeError(c, http.StatusBadRequest, "at must be an RFC 3339 timestamp")
		return
	}
	p := h.toll.PeakPremium(c.Request.Context(), at, q.Inbound)
	writeJSON(c, http.StatusOK, toPremiumResp(p))
}

func (h *TollHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	at, err := parseAt(req.At)
	if err != nil {
		writeError(c, http.StatusBadRequest, "at must be an RFC 3339 timestamp")
		return
	}
	var v vehicle.Vehicle
	if req.Vehicle != nil {
		v = req.Vehicle.Vehicle()
	}
	q, err := h.toll.Quote(c.Request.Context(), v, at, req.Inbound)
	if err != nil {
		writeTollError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quoteResp{
		baseTollResp: baseTollResp{Kind: q.Kind, Fee: q.Fee.String(), Currency: q.Fee.Currency},
		premiumResp:  toPremiumResp(q.Premium),
	})
}

// parseAt returns the zero time for an empty value so the service clock applies.
func parseAt(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}

func toPremiumResp(p toll.Premium) premiumResp {
	return premiumResp{
		Premium:  p.Multiplier.StringFixed(2),
		TimeBand: p.Band,
		At:       p.At,
		Inbound:  p.Inbound,
	}
}
