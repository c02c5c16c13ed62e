package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

// listFoodItems lists food items, soonest expiry first, optionally filtered
// by status and category
func (s *Server) listFoodItems(c *gin.Context) {
	var params struct {
		Status   schema.FoodItemStatus `form:"status"`
		Category schema.FoodCategory   `form:"category"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	items, err := s.mongoStore.ListFoodItems(schema.FoodItemFilter{
		Status:   params.Status,
		Category: params.Category,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, items, len(items))
}

func (s *Server) foodItemStats(c *gin.Context) {
	stats, err := s.mongoStore.FoodItemStats(s.now())
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, stats)
}

func (s *Server) getFoodItem(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrFoodItemNotFound)
	if !ok {
		return
	}

	item, err := s.mongoStore.GetFoodItem(id)
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, item)
}

func (s *Server) createFoodItem(c *gin.Context) {
	var params struct {
		Name           string              `json:"name"`
		Category       schema.FoodCategory `json:"category"`
		Quantity       *float64            `json:"quantity"`
		Unit           schema.FoodUnit     `json:"unit"`
		ExpiryDate     flexTime            `json:"expiryDate"`
		CollectionTime flexTime            `json:"collectionTime"`
		Location       string              `json:"location"`
		Notes          string              `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	item, err := s.mongoStore.CreateFoodItem(&schema.FoodItem{
		Name:           params.Name,
		Category:       params.Category,
		Quantity:       params.Quantity,
		Unit:           params.Unit,
		ExpiryDate:     params.ExpiryDate.value(),
		CollectionTime: params.CollectionTime.value(),
		Location:       params.Location,
		Notes:          params.Notes,
	}, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusCreated, item)
}

func (s *Server) collectFoodItem(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrFoodItemNotFound)
	if !ok {
		return
	}

	item, err := s.mongoStore.CollectFoodItem(id, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, item)
}

func (s *Server) deleteFoodItem(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrFoodItemNotFound)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteFoodItem(id, identityOf(c)); shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, gin.H{})
}
