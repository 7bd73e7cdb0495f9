package dto

type CollectionPointResponse struct {
	Name     string  `json:"name"`
	Day      string  `json:"day"`
	Material string  `json:"material"`
	WeightKg float64 `json:"weight_kg"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type ListCollectionPointsResponse struct {
	CollectionPoints []CollectionPointResponse `json:"collection_points"`
}

type DepotResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type ListDepotsResponse struct {
	Depots []DepotResponse `json:"depots"`
}

type MaterialPriceResponse struct {
	Material   string  `json:"material"`
	PricePerKg float64 `json:"price_per_kg"`
}

type ListMaterialPricesResponse struct {
	MaterialPrices []MaterialPriceResponse `json:"material_prices"`
}
