package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestBuildSettingsUpdateOnlyPresentFields(t *testing.T) {
	fee := decimal.RequireFromString("7.50")
	req := &model.UpdateSettingsRequest{
		BusinessName: strPtr("Pizza Flow"),
		DeliveryFee:  &fee,
		AllowPickup:  boolPtr(false),
	}

	setClause, args := buildSettingsUpdate(req)

	assert.Equal(t, "business_name = $1, delivery_fee = $2, allow_pickup = $3", setClause)
	assert.Equal(t, []interface{}{"Pizza Flow", fee, false}, args)
}

func TestBuildSettingsUpdateEmptyRequest(t *testing.T) {
	setClause, args := buildSettingsUpdate(&model.UpdateSettingsRequest{})

	assert.Empty(t, setClause)
	assert.Empty(t, args)
}

func TestBuildOrderFilterCombinesConditions(t *testing.T) {
	restaurantID := int64(1)
	number := "ORDER-1-abcdef12"

	where, args := buildOrderFilter(entity.OrderFilter{
		OrderNumber:  &number,
		RestaurantID: &restaurantID,
	})

	assert.Equal(t, "WHERE order_number = $1 AND restaurant_id = $2", where)
	assert.Equal(t, []interface{}{number, restaurantID}, args)
}

func TestBuildOrderFilterEmpty(t *testing.T) {
	where, args := buildOrderFilter(entity.OrderFilter{})

	assert.Empty(t, where)
	assert.Nil(t, args)
}
