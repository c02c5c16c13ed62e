package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

type donationParams struct {
	FoodName      *string   `json:"foodName"`
	Quantity      *string   `json:"quantity"`
	ExpiryDate    *flexTime `json:"expiryDate"`
	Description   *string   `json:"description"`
	PickupAddress *string   `json:"pickupAddress"`
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// listDonations returns one page of every donation
func (s *Server) listDonations(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	donations, total, err := s.mongoStore.ListDonations(page)
	if shouldInterupt(err, c) {
		return
	}

	responsePage(c, donations, len(donations), schema.Paginate(page, total))
}

func (s *Server) listAvailableDonations(c *gin.Context) {
	donations, err := s.mongoStore.ListAvailableDonations()
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, donations, len(donations))
}

func (s *Server) listMyDonations(c *gin.Context) {
	donations, err := s.mongoStore.ListDonationsByDonor(identityOf(c).UserID)
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, donations, len(donations))
}

func (s *Server) getDonation(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrDonationNotFound)
	if !ok {
		return
	}

	donation, err := s.mongoStore.GetDonation(id)
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, donation)
}

// createDonation posts a new available donation owned by the caller
func (s *Server) createDonation(c *gin.Context) {
	var params donationParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	donation, err := s.mongoStore.CreateDonation(&schema.Donation{
		FoodName:      stringValue(params.FoodName),
		Quantity:      stringValue(params.Quantity),
		ExpiryDate:    params.ExpiryDate.value(),
		Description:   stringValue(params.Description),
		PickupAddress: stringValue(params.PickupAddress),
	}, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusCreated, donation)
}

func (s *Server) updateDonation(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrDonationNotFound)
	if !ok {
		return
	}

	var params donationParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	donation, err := s.mongoStore.UpdateDonation(id, identityOf(c), schema.DonationUpdate{
		FoodName:      params.FoodName,
		Quantity:      params.Quantity,
		ExpiryDate:    params.ExpiryDate.pointer(),
		Description:   params.Description,
		PickupAddress: params.PickupAddress,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, donation)
}

func (s *Server) deleteDonation(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrDonationNotFound)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteDonation(id, identityOf(c)); shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, gin.H{})
}

// requestDonation reserves the donation for the caller
func (s *Server) requestDonation(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrDonationNotFound)
	if !ok {
		return
	}

	request, err := s.mongoStore.RequestDonation(id, identityOf(c))
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusCreated, request)
}
