package controllers

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
)

type computeRouteRequest struct {
	Origin      []float64 `json:"origin" validate:"required,len=2"`
	Destination []float64 `json:"destination" validate:"required,len=2"`
	Hour        *int      `json:"hour" validate:"omitempty,min=0,max=23"`
	Alpha       *float64  `json:"alpha" validate:"omitempty,min=0,max=1"`
	Type        string    `json:"type" validate:"omitempty,oneof=shortest safest balanced"`
}

type coordResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newCoordResponse(c datastructure.Coordinate) coordResponse {
	return coordResponse{Lat: c.GetLat(), Lon: c.GetLon()}
}

type routeResponse struct {
	Path       []coordResponse    `json:"path"`
	Eta        float64            `json:"eta"`
	Risk       float64            `json:"risk"`
	Confidence float64            `json:"confidence"`
	Geometry   [][2]coordResponse `json:"geometry"`
	Polyline   string             `json:"polyline"`
	Warnings   []string           `json:"warnings,omitempty"`
}

type computeRouteResponse struct {
	Route          routeResponse `json:"route"`
	Strategy       string        `json:"strategy"`
	TimeMultiplier float64       `json:"time_multiplier"`
}

func NewComputeRouteResponse(result *routing.RouteResult, encodedPolyline, strategy string,
	timeMultiplier float64) computeRouteResponse {

	path := make([]coordResponse, 0, len(result.Path))
	for _, c := range result.Path {
		path = append(path, newCoordResponse(c))
	}
	geometry := make([][2]coordResponse, 0, len(result.Geometry))
	for _, pair := range result.Geometry {
		geometry = append(geometry, [2]coordResponse{newCoordResponse(pair[0]), newCoordResponse(pair[1])})
	}

	return computeRouteResponse{
		Route: routeResponse{
			Path:       path,
			Eta:        result.Eta,
			Risk:       result.Risk,
			Confidence: result.Confidence,
			Geometry:   geometry,
			Polyline:   encodedPolyline,
			Warnings:   result.Warnings,
		},
		Strategy:       strategy,
		TimeMultiplier: timeMultiplier,
	}
}

type updateRiskConfigRequest struct {
	Weights map[string]float64 `json:"weights" validate:"required,min=1"`
}

type updateRiskConfigResponse struct {
	Message       string `json:"message"`
	ConfigVersion uint64 `json:"config_version"`
}

type reloadDatasetResponse struct {
	Message  string `json:"message"`
	Segments int    `json:"segments"`
}
