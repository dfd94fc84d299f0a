package server

import (
	"errors"
	"strings"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/itinerary"
)

// RouteHandlers answers station and route queries against one graph.
type RouteHandlers struct {
	logger *slog.Logger
	graph  *core.Graph
	time   dijkstra.TimeParams
}

// NewRouteHandlers constructs RouteHandlers. tp is applied to Time searches.
func NewRouteHandlers(logger *slog.Logger, g *core.Graph, tp dijkstra.TimeParams) *RouteHandlers {
	return &RouteHandlers{logger: logger, graph: g, time: tp}
}

type stationsResponse struct {
	Count    int                 `json:"count"`
	Stations []itinerary.Station `json:"stations"`
	Codes    []string            `json:"codes"`
}

type routeResponse struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	FromName     string              `json:"fromName"`
	ToName       string              `json:"toName"`
	Model        string              `json:"model"`
	Cost         int64               `json:"cost"`
	Minutes      *int64              `json:"minutes,omitempty"`
	Interchanges int                 `json:"interchanges"`
	Nodes        []string            `json:"nodes"`
	Segments     []itinerary.Segment `json:"segments"`
	Display      string              `json:"display"`
}

type legsResponse struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	Legs         int                 `json:"legs"`
	Interchanges int                 `json:"interchanges"`
	Nodes        []string            `json:"nodes"`
	Segments     []itinerary.Segment `json:"segments"`
	Display      string              `json:"display"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (h *RouteHandlers) handleStations(c *gin.Context) {
	stations, err := itinerary.Stations(h.graph)
	if err != nil {
		h.logger.Error("listing stations failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "MALFORMED_NODE_NAME"})
		return
	}
	codes, err := itinerary.StationCodes(h.graph)
	if err != nil {
		h.logger.Error("listing station codes failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "MALFORMED_NODE_NAME"})
		return
	}

	c.JSON(http.StatusOK, stationsResponse{Count: len(stations), Stations: stations, Codes: codes})
}

func (h *RouteHandlers) handleMap(c *gin.Context) {
	c.String(http.StatusOK, h.graph.String())
}

func (h *RouteHandlers) handleRoute(c *gin.Context) {
	from, to, ok := h.endpoints(c)
	if !ok {
		return
	}

	model := dijkstra.Distance
	if raw := c.Query("model"); raw != "" {
		m, err := dijkstra.ParseCostModel(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "UNKNOWN_COST_MODEL"})
			return
		}
		model = m
	}

	route, err := dijkstra.ShortestPath(h.graph, from, to,
		dijkstra.WithCostModel(model),
		dijkstra.WithTimeParams(h.time),
		dijkstra.WithPreCheck(),
	)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}

	it, err := itinerary.Format(route)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}
	fromName, err := itinerary.DisplayName(from)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}
	toName, err := itinerary.DisplayName(to)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}

	resp := routeResponse{
		From:         from,
		To:           to,
		FromName:     fromName,
		ToName:       toName,
		Model:        model.String(),
		Cost:         it.Cost,
		Interchanges: it.Interchanges,
		Nodes:        route.Nodes,
		Segments:     it.Segments,
		Display:      it.String(),
	}
	if model == dijkstra.Time {
		minutes := itinerary.Minutes(it.Cost)
		resp.Minutes = &minutes
	}

	c.JSON(http.StatusOK, resp)
}

// handleLegs answers the fewest-edges route, optionally avoiding one line code.
func (h *RouteHandlers) handleLegs(c *gin.Context) {
	from, to, ok := h.endpoints(c)
	if !ok {
		return
	}

	opts := []bfs.Option{bfs.WithContext(c.Request.Context())}
	if avoid := c.Query("avoid"); avoid != "" {
		opts = append(opts, bfs.WithFilterNeighbor(func(_, nbr string) bool {
			line, err := itinerary.LineCode(nbr)
			return err != nil || !strings.EqualFold(line, avoid) || nbr == to
		}))
	}

	nodes, err := bfs.FewestLegs(h.graph, from, to, opts...)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}
	it, err := itinerary.FormatNodes(nodes)
	if err != nil {
		h.writeSearchError(c, err, from, to)
		return
	}

	c.JSON(http.StatusOK, legsResponse{
		From:         from,
		To:           to,
		Legs:         len(nodes) - 1,
		Interchanges: it.Interchanges,
		Nodes:        nodes,
		Segments:     it.Segments,
		Display:      it.String(),
	})
}

// endpoints resolves the from/to query parameters by node key or line code.
// On failure it writes the error response and reports false.
func (h *RouteHandlers) endpoints(c *gin.Context) (from, to string, ok bool) {
	rawFrom, rawTo := c.Query("from"), c.Query("to")
	if rawFrom == "" || rawTo == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "from and to are required", Code: "BAD_REQUEST"})
		return "", "", false
	}

	var err error
	if from, err = itinerary.Resolve(h.graph, rawFrom); err != nil {
		h.writeSearchError(c, err, rawFrom, rawTo)
		return "", "", false
	}
	if to, err = itinerary.Resolve(h.graph, rawTo); err != nil {
		h.writeSearchError(c, err, rawFrom, rawTo)
		return "", "", false
	}

	return from, to, true
}

// writeSearchError maps search and formatting failures to HTTP statuses.
func (h *RouteHandlers) writeSearchError(c *gin.Context, err error, from, to string) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, dijkstra.ErrInvalidEndpoints), errors.Is(err, itinerary.ErrUnknownStation):
		status, code = http.StatusNotFound, "INVALID_ENDPOINTS"
	case errors.Is(err, itinerary.ErrAmbiguousCode):
		status, code = http.StatusBadRequest, "AMBIGUOUS_STATION_CODE"
	case errors.Is(err, dijkstra.ErrUnreachable), errors.Is(err, bfs.ErrNoPath):
		status, code = http.StatusUnprocessableEntity, "UNREACHABLE"
	case errors.Is(err, itinerary.ErrMalformedNodeName):
		code = "MALFORMED_NODE_NAME"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("route search failed", "from", from, "to", to, "error", err)
	} else {
		h.logger.Debug("route search rejected", "from", from, "to", to, "error", err)
	}
	c.JSON(status, errorResponse{Error: err.Error(), Code: code})
}
