package router

import (
	"context"

	"tainan-restaurant/internal/model"
)

type panickingService struct{}

func (panickingService) RandomByDistrict(context.Context, string, int) ([]model.Restaurant, error) {
	panic("random by district")
}

func (panickingService) GetByName(context.Context, string) ([]model.Restaurant, error) {
	panic("get by name")
}

func (panickingService) Districts(context.Context) []string {
	panic("districts")
}
