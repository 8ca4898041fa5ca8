package servers_test

import (
	"testing"

	"oms/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(t.Context()))
	assert.Equal(t, "Order Management System API", swagger.Info.Title)

	orders := swagger.Paths.Find("/orders")
	require.NotNil(t, orders)
	assert.Equal(t, "ListOrders", orders.Get.OperationID)
	assert.Equal(t, "CreateOrder", orders.Post.OperationID)

	byID := swagger.Paths.Find("/orders/{id}")
	require.NotNil(t, byID)
	assert.Equal(t, "GetOrder", byID.Get.OperationID)
	assert.Equal(t, "UpdateOrder", byID.Patch.OperationID)
	assert.Equal(t, "DeleteOrder", byID.Delete.OperationID)
}
