package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	helper "github.com/lintang-b-s/saferoutex/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const (
	defaultHour  = 22
	defaultAlpha = 0.5
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/routes", api.computeRoute)
	group.POST("/risk-config", api.updateRiskConfig)
	group.POST("/dataset/reload", api.reloadDataset)
}

// computeRoute
//
//	@Summary		compute a route between two coordinates trading travel time against estimated safety risk
//	@Description	route-type presets: "shortest" minimizes eta, "safest" minimizes risk, "balanced" uses the supplied alpha blend
//	@Tags			routing
//	@Param			body	body	computeRouteRequest	true	"route query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/api/routes [post]
func (api *routingAPI) computeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request computeRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, errors.New("malformed json body"))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	origin, err := parseCoordinate(request.Origin)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid origin: %w", err))
		return
	}
	destination, err := parseCoordinate(request.Destination)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid destination: %w", err))
		return
	}
	if origin == destination {
		api.BadRequestResponse(w, r, errors.New("origin and destination cannot match"))
		return
	}

	hour := defaultHour
	if request.Hour != nil {
		hour = *request.Hour
	}
	alpha := defaultAlpha
	if request.Alpha != nil {
		alpha = *request.Alpha
	}
	routeType := pkg.RouteType(request.Type)
	if request.Type == "" {
		routeType = pkg.ROUTE_BALANCED
	}
	if !routeType.Valid() {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid route type %q", request.Type))
		return
	}

	result, encodedPolyline, timeMultiplier, err := api.routingService.ComputeRoute(
		origin, destination, hour, alpha, routeType)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRouteResponse(
		result, encodedPolyline, string(routeType), timeMultiplier)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// updateRiskConfig
//
//	@Summary		merge named weights into the risk configuration
//	@Description	last write wins per key; every update bumps the config version and clears the graph cache and risk memo
//	@Tags			routing
//	@Param			body	body	updateRiskConfigRequest	true	"weight updates"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/api/risk-config [post]
func (api *routingAPI) updateRiskConfig(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request updateRiskConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, errors.New("invalid config payload"))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, errors.New("invalid config payload"))
		return
	}

	version, err := api.routingService.UpdateRiskConfig(request.Weights)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": updateRiskConfigResponse{
		Message:       "Risk config updated",
		ConfigVersion: version,
	}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// reloadDataset
//
//	@Summary		reload the segment dataset from disk
//	@Description	validate-then-swap; a failed reload keeps the previous dataset, a successful one clears every cache
//	@Tags			routing
//	@Produce		application/json
//	@Router			/api/dataset/reload [post]
func (api *routingAPI) reloadDataset(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	n, err := api.routingService.ReloadDataset()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": reloadDatasetResponse{
		Message:  "Dataset reloaded",
		Segments: n,
	}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func parseCoordinate(pair []float64) (datastructure.Coordinate, error) {
	if len(pair) != 2 {
		return datastructure.Coordinate{}, errors.New("coordinate must be [lat, lon]")
	}
	lat, lon := pair[0], pair[1]
	if lat < -90 || lat > 90 {
		return datastructure.Coordinate{}, fmt.Errorf("latitude %f out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return datastructure.Coordinate{}, fmt.Errorf("longitude %f out of range", lon)
	}
	return datastructure.NewCoordinate(lat, lon), nil
}
