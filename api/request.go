package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

func (s *Server) listRequests(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	requests, total, err := s.mongoStore.ListRequests(page)
	if shouldInterupt(err, c) {
		return
	}

	responsePage(c, requests, len(requests), schema.Paginate(page, total))
}

// listMyRequests returns the caller's requests with their donations
func (s *Server) listMyRequests(c *gin.Context) {
	requests, err := s.mongoStore.ListRequestsByRecipient(identityOf(c).UserID)
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, requests, len(requests))
}

func (s *Server) getRequest(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrRequestNotFound)
	if !ok {
		return
	}

	request, err := s.mongoStore.GetRequest(id, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, request)
}

// createRequest stores a request that is not tied to a donation. The form
// names quantity and description differently from the stored record.
func (s *Server) createRequest(c *gin.Context) {
	var params struct {
		FoodType           string   `json:"foodType"`
		RequestQuantity    string   `json:"requestQuantity"`
		PreferredDate      flexTime `json:"preferredDate"`
		RequestDescription string   `json:"requestDescription"`
		DeliveryAddress    string   `json:"deliveryAddress"`
		FoodItem           string   `json:"foodItem"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request := &schema.Request{
		FoodType:        params.FoodType,
		Quantity:        params.RequestQuantity,
		PreferredDate:   params.PreferredDate.value(),
		Description:     params.RequestDescription,
		DeliveryAddress: params.DeliveryAddress,
	}

	if params.FoodItem != "" {
		foodItemID, err := primitive.ObjectIDFromHex(params.FoodItem)
		if err != nil {
			abortWithError(c, lifecycle.ErrFoodItemNotFound)
			return
		}
		request.FoodItem = &foodItemID
	}

	request, err := s.mongoStore.CreateRequest(request, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusCreated, request)
}

func (s *Server) updateRequest(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrRequestNotFound)
	if !ok {
		return
	}

	var params struct {
		FoodType        *string               `json:"foodType"`
		Quantity        *string               `json:"quantity"`
		PreferredDate   *flexTime             `json:"preferredDate"`
		Description     *string               `json:"description"`
		DeliveryAddress *string               `json:"deliveryAddress"`
		Status          *schema.RequestStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.mongoStore.UpdateRequest(id, identityOf(c), schema.RequestUpdate{
		FoodType:        params.FoodType,
		Quantity:        params.Quantity,
		PreferredDate:   params.PreferredDate.pointer(),
		Description:     params.Description,
		DeliveryAddress: params.DeliveryAddress,
		Status:          params.Status,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, request)
}

// deleteRequest removes the request and frees its donation
func (s *Server) deleteRequest(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrRequestNotFound)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteRequest(id, identityOf(c)); shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, gin.H{})
}
