package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/api/dto"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/ports"
)

// RecordsHandler exposes read-only listings of the loaded record sets.
type RecordsHandler struct {
	Collections ports.CollectionPointRepository
	Depots      ports.DepotRepository
	Prices      ports.MaterialPriceRepository
}

func (h *RecordsHandler) ListCollectionPoints(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	points, err := h.Collections.ListCollectionPoints(r.Context())
	if err != nil {
		log.Printf("list collection points failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCollectionPointsResponse{
		CollectionPoints: make([]dto.CollectionPointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.CollectionPoints = append(res.CollectionPoints, dto.CollectionPointResponse{
			Name:     p.Name,
			Day:      p.Day,
			Material: p.Material,
			WeightKg: p.WeightKg,
			Lat:      p.Coords.Lat,
			Lon:      p.Coords.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RecordsHandler) ListDepots(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	depots, err := h.Depots.ListDepots(r.Context())
	if err != nil {
		log.Printf("list depots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDepotsResponse{Depots: make([]dto.DepotResponse, 0, len(depots))}
	for _, d := range depots {
		res.Depots = append(res.Depots, dto.DepotResponse{
			Name: d.Name,
			Lat:  d.Coords.Lat,
			Lon:  d.Coords.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RecordsHandler) ListMaterialPrices(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	prices, err := h.Prices.ListMaterialPrices(r.Context())
	if err != nil {
		log.Printf("list material prices failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMaterialPricesResponse{
		MaterialPrices: make([]dto.MaterialPriceResponse, 0, len(prices)),
	}
	for material, price := range prices {
		res.MaterialPrices = append(res.MaterialPrices, dto.MaterialPriceResponse{
			Material:   material,
			PricePerKg: price,
		})
	}
	// Map iteration order is random; keep the listing stable for clients.
	sort.Slice(res.MaterialPrices, func(i, j int) bool {
		return res.MaterialPrices[i].Material < res.MaterialPrices[j].Material
	})

	writeJSON(w, r, http.StatusOK, res)
}
