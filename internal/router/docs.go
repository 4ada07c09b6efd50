package router

import (
	"tainan-restaurant/internal/model"
	"tainan-restaurant/internal/openapi"
)

const (
	apiTitle   = "Tainan Restaurant API"
	apiVersion = "0.1.0"
)

func componentSchemas() *openapi.Map {
	restaurantProps := openapi.NewMap()
	for _, field := range model.RestaurantFields {
		restaurantProps.Set(field, openapi.StringSchema(""))
	}

	return openapi.NewMap().
		Set("Restaurant", openapi.NewMap().
			Set("type", "object").
			Set("title", "Restaurant").
			Set("properties", restaurantProps).
			Set("required", model.RestaurantFields)).
		Set("Message", openapi.NewMap().
			Set("type", "object").
			Set("title", "Message").
			Set("properties", openapi.NewMap().
				Set("message", openapi.StringSchema("Message"))).
			Set("required", []string{"message"})).
		Set("Error", openapi.NewMap().
			Set("type", "object").
			Set("title", "Error").
			Set("properties", openapi.NewMap().
				Set("error", openapi.StringSchema("Error")).
				Set("message", openapi.StringSchema("Message")).
				Set("requestId", openapi.StringSchema("Request Id"))).
			Set("required", []string{"error", "message"}))
}

func randomByDistrictDoc() *openapi.Operation {
	return &openapi.Operation{
		OperationID: "get_tainan_restaurant_by_district_random_restaurant__district__get",
		Summary:     "Get Tainan Restaurant By District",
		Description: "Randomly pick restaurants located in a Tainan district.",
		Parameters: []openapi.Parameter{
			{
				Name:     "district",
				In:       openapi.InPath,
				Required: true,
				Schema:   openapi.StringSchema("District"),
			},
			{
				Name:        "number",
				In:          openapi.InQuery,
				Required:    false,
				Description: "How many restaurants to return.",
				Schema: openapi.NewMap().
					Set("type", "integer").
					Set("minimum", 1).
					Set("default", 5).
					Set("title", "Number"),
			},
		},
		Responses: []openapi.Response{
			{
				Status:      "200",
				Description: "Successful Response",
				Schema:      openapi.AnyOf(openapi.ArrayOf(openapi.Ref("Restaurant")), openapi.Ref("Message")),
			},
			{
				Status:      "400",
				Description: "Invalid number",
				Schema:      openapi.Ref("Error"),
			},
		},
	}
}

func getByNameDoc() *openapi.Operation {
	return &openapi.Operation{
		OperationID: "get_tainan_restaurant_by_name_restaurant__name__get",
		Summary:     "Get Tainan Restaurant By Name",
		Description: "Look up restaurants by exact name.",
		Parameters: []openapi.Parameter{
			{
				Name:     "name",
				In:       openapi.InPath,
				Required: true,
				Schema:   openapi.StringSchema("Name"),
			},
		},
		Responses: []openapi.Response{
			{
				Status:      "200",
				Description: "Successful Response",
				Schema:      openapi.AnyOf(openapi.ArrayOf(openapi.Ref("Restaurant")), openapi.Ref("Message")),
			},
		},
	}
}

func districtsDoc() *openapi.Operation {
	return &openapi.Operation{
		OperationID: "list_districts_districts_get",
		Summary:     "List Districts",
		Description: "List the districts present in the restaurant data.",
		Responses: []openapi.Response{
			{
				Status:      "200",
				Description: "Successful Response",
				Schema:      openapi.ArrayOf(openapi.StringSchema("")),
			},
		},
	}
}
