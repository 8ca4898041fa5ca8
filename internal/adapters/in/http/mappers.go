package http

import (
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/order"
	"oms/internal/generated/servers"
)

func toItemInputs(items []servers.OrderItem) []order.ItemInput {
	inputs := make([]order.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = order.ItemInput{
			ProductID: item.ProductId,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return inputs
}

func toOrderResponse(o *order.Order) servers.Order {
	items := o.Items()
	response := make([]servers.OrderItem, len(items))
	for i, item := range items {
		response[i] = servers.OrderItem{
			ProductId: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		}
	}

	return servers.Order{
		Id:         o.ID().String(),
		UserId:     o.OwnerID(),
		Items:      response,
		TotalPrice: o.TotalPrice(),
		Status:     servers.OrderStatus(o.Status().String()),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func toOrderListResponse(page queries.OrderPage) servers.OrderList {
	orders := make([]servers.Order, len(page.Orders))
	for i, o := range page.Orders {
		orders[i] = toOrderResponse(o)
	}

	return servers.OrderList{
		Orders:     orders,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
