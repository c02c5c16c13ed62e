package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

// createVolunteer registers a volunteer with an empty reward ledger
func (s *Server) createVolunteer(c *gin.Context) {
	var params struct {
		FullName         string `json:"fullName"`
		Email            string `json:"email"`
		Phone            string `json:"phone"`
		City             string `json:"city"`
		Roles            string `json:"roles"`
		Availability     string `json:"availability"`
		Vehicle          string `json:"vehicle"`
		Motivation       string `json:"motivation"`
		EmergencyContact string `json:"emergencyContact"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	volunteer, err := s.mongoStore.CreateVolunteer(&schema.Volunteer{
		FullName:         params.FullName,
		Email:            params.Email,
		Phone:            params.Phone,
		City:             params.City,
		Roles:            params.Roles,
		Availability:     params.Availability,
		Vehicle:          params.Vehicle,
		Motivation:       params.Motivation,
		EmergencyContact: params.EmergencyContact,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusCreated, volunteer)
}

func (s *Server) listVolunteers(c *gin.Context) {
	volunteers, err := s.mongoStore.ListVolunteers()
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, volunteers, len(volunteers))
}

func (s *Server) addVolunteerStars(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrVolunteerNotFound)
	if !ok {
		return
	}

	var params struct {
		Stars *int `json:"stars"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Stars == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	volunteer, err := s.mongoStore.AddVolunteerStars(id, *params.Stars)
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, volunteer)
}

func (s *Server) addVolunteerReward(c *gin.Context) {
	id, ok := objectIDParam(c, lifecycle.ErrVolunteerNotFound)
	if !ok {
		return
	}

	var params struct {
		Reward string `json:"reward"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	volunteer, err := s.mongoStore.AddVolunteerReward(id, params.Reward)
	if shouldInterupt(err, c) {
		return
	}

	responseData(c, http.StatusOK, volunteer)
}
